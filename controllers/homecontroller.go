package controllers

import (
	"encoding/json"
	"log"
	"net/http"
)

type HomeController struct{}

func (homeController *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	w.WriteHeader(http.StatusOK)

	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Study Bot API is running",
		"status":  "active",
		"version": "1.0",
		"endpoints": map[string]string{
			"chat":          "POST /chat",
			"history":       "GET /history/{user_id}",
			"clear_history": "DELETE /history/{user_id}",
			"stats":         "GET /stats/{user_id}",
		},
	})
	if err != nil {
		log.Printf("%s", err)
	}
}
