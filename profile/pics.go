package profile

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"everbloom/db"
	"everbloom/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const userPicDir = "./static/userpics"

func saveProfileImage(r *http.Request, userID string) (string, error) {
	file, _, err := r.FormFile("profile_picture")
	if err != nil {
		return "", fmt.Errorf("profile picture upload failed: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumbDir := filepath.Join(userPicDir, "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := userID + ".jpg"
	if err := imaging.Save(img, filepath.Join(userPicDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumbImg := imaging.Resize(img, 128, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/userpics/" + fileName, nil
}

// EditProfilePic replaces the caller's profile picture. The stored image is
// re-encoded and a 128px thumbnail is written alongside it.
func EditProfilePic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	imageURL, err := saveProfileImage(r, userID)
	if err != nil {
		log.Printf("profile: save picture for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile picture")
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"profileImageUrl": imageURL, "updated_at": time.Now()}})
	if err != nil {
		log.Printf("profile: update picture for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile picture")
		return
	}

	InvalidateCachedProfile(userID)

	p, err := fetchProfile(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}
