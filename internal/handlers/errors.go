package handlers

import (
	"log"
	"net/http"
)

// User-facing notices shared by the practice views.
const (
	NoticeSetCompleted   = "You have completed every word in this set. Press Reset to practice it again."
	NoticeCelebration    = "You completed the whole set! Press Reset to practice it again."
	NoticeStartFirst     = "Press Start / Continue to get a question."
	NoticeReset          = "This set has been reset."
	WarnEmptySelection   = "Choose an answer first."
	WarnAudioUnavailable = "Audio could not be loaded. You can still type the answer, or start a new question."
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}
