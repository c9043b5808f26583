package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/constants"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/logging"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/storage"
	"github.com/gin-gonic/gin"
)

const sessionTTL = 30 * 24 * time.Hour

// SessionHandler creates anonymous player saves and issues session tokens.
type SessionHandler struct {
	repo       storage.Repository
	clickPower float64
}

func NewSessionHandler(repo storage.Repository, clickPower float64) *SessionHandler {
	return &SessionHandler{repo: repo, clickPower: clickPower}
}

type createSessionRequest struct {
	PlayerName string `json:"player_name"`
}

// CreateSession registers a fresh save and sets the session cookie.
// There is no account system: the cookie is the save.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		name = "Anonymous Snowballer"
	}

	p := &game.Player{
		PlayerUUID:  uuid.NewString(),
		PlayerName:  name,
		ClickPower:  h.clickPower,
		LastAccrual: time.Now(),
	}
	if err := h.repo.CreatePlayer(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}

	token, err := createSessionToken(p.PlayerUUID, p.PlayerName, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
		return
	}
	setSessionCookie(c, token, sessionTTL)

	logging.Info("session created", logging.Fields{constants.LogFieldPlayerUUID: p.PlayerUUID})
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": out, "token": token})
}

// DeleteSession clears the session cookie. The save itself stays.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "session cleared"})
}
