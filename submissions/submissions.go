package submissions

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"time"

	"everbloom/db"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// ContactMessage is a customer enquiry from the contact form.
type ContactMessage struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// SubmitContact stores a contact-form message for follow-up.
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var msg ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}
	if !emailRegex.MatchString(msg.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	msg.Status = "new"
	msg.CreatedAt = time.Now()

	if _, err := db.ContactCollection.InsertOne(ctx, msg); err != nil {
		log.Printf("submissions: insert contact message: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send your message. Please try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Thank you for contacting us!"})
}
