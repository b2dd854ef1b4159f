package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/zarkopopovski/study-bot/db"
)

type HistoryController struct {
	DBManager *db.DBManager
}

func (historyController *HistoryController) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	userID := r.PathValue("userID")

	messages, err := historyController.DBManager.ListMessagesForUser(userID)
	if err != nil {
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "1", "message": "Error retrieving history"})
		return
	}

	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(messages); err != nil {
		log.Printf("%s", err)
	}
}

func (historyController *HistoryController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	userID := r.PathValue("userID")

	deleted, err := historyController.DBManager.DeleteMessagesForUser(userID)
	if err != nil {
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "2", "message": "Error clearing history"})
		return
	}

	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]int64{"deleted": deleted}); err != nil {
		log.Printf("%s", err)
	}
}

func (historyController *HistoryController) GetStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	userID := r.PathValue("userID")

	counts, err := historyController.DBManager.CountMessagesByRole(userID)
	if err != nil {
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "3", "message": "Error getting stats"})
		return
	}

	w.WriteHeader(http.StatusOK)

	err = json.NewEncoder(w).Encode(map[string]interface{}{
		"user_id":            userID,
		"user_messages":      counts.User,
		"assistant_messages": counts.Assistant,
		"total":              counts.Total(),
	})
	if err != nil {
		log.Printf("%s", err)
	}
}
