package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/zarkopopovski/study-bot/db"
	"github.com/zarkopopovski/study-bot/llm"
	"github.com/zarkopopovski/study-bot/models"
)

type ChatController struct {
	DBManager *db.DBManager
	LLM       llm.Completer
}

type ChatRequest struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (chatController *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	b, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	var chatRequest ChatRequest

	if err := json.Unmarshal(b, &chatRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "1", "message": "Request body must be valid JSON"})
		return
	}

	if strings.TrimSpace(chatRequest.UserID) == "" {
		w.WriteHeader(http.StatusBadRequest)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "2", "message": "user_id is required"})
		return
	}

	if strings.TrimSpace(chatRequest.Question) == "" {
		w.WriteHeader(http.StatusBadRequest)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "3", "message": "question is required"})
		return
	}

	history, err := chatController.DBManager.RecentMessagesForUser(chatRequest.UserID, llm.HistoryWindow)
	if err != nil {
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "4", "message": "Chat processing error"})
		return
	}

	content := llm.BuildPrompt(history, chatRequest.Question)

	answer, err := chatController.LLM.Complete(r.Context(), content)
	if err != nil {
		// upstream detail stays in the server log only
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "5", "message": "Chat processing error"})
		return
	}

	// The two inserts are deliberately not one transaction; a failure
	// between them leaves an unanswered user turn in the history.
	err = chatController.DBManager.SaveMessage(chatRequest.UserID, models.RoleUser, chatRequest.Question)
	if err != nil {
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "6", "message": "Chat processing error"})
		return
	}

	err = chatController.DBManager.SaveMessage(chatRequest.UserID, models.RoleAssistant, answer)
	if err != nil {
		log.Println(err.Error())

		w.WriteHeader(http.StatusInternalServerError)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error_code": "7", "message": "Chat processing error"})
		return
	}

	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(ChatResponse{
		Response:  answer,
		UserID:    chatRequest.UserID,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		log.Printf("%s", err)
	}
}
