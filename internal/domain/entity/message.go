package entity

import "time"

type Message struct {
	ID        string    `json:"id" firestore:"-"`
	ChatID    string    `json:"chatId" firestore:"chatId"`
	SenderID  string    `json:"senderId" firestore:"senderId"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
