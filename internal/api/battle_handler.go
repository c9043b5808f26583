package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/battle"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/constants"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/service"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/storage"
	"github.com/gin-gonic/gin"
)

// BattleHandler exposes the encounter engine over HTTP.
type BattleHandler struct {
	repo        storage.Repository
	sessions    *service.BattleSessions
	ledgerLimit int
}

func NewBattleHandler(repo storage.Repository, sessions *service.BattleSessions, ledgerLimit int) *BattleHandler {
	return &BattleHandler{repo: repo, sessions: sessions, ledgerLimit: ledgerLimit}
}

type actorView struct {
	ID        string `json:"id"`
	Class     string `json:"class"`
	Power     int64  `json:"power"`
	ExpiresAt string `json:"expires_at"`
	Threatens string `json:"threatens"`
	Engaged   bool   `json:"engaged"`
}

func viewActor(actor battle.OpposingActor, engaged bool) actorView {
	return actorView{
		ID:        actor.ID,
		Class:     string(actor.Class),
		Power:     actor.Power,
		ExpiresAt: actor.SpawnTime.Add(actor.ExpiryDuration).Format(time.RFC3339),
		Threatens: string(battle.ThreatenedResource(actor.Class)),
		Engaged:   engaged,
	}
}

func (h *BattleHandler) state(c *gin.Context, eng *battle.Engine) gin.H {
	out := gin.H{
		"ability_level": eng.AbilityLevel(),
		"actor":         nil,
	}
	if actor, ok := eng.CurrentActor(); ok {
		_, engaged := eng.CurrentEngagement()
		out["actor"] = viewActor(actor, engaged)
	}
	return out
}

// GetState returns the live encounter, if any.
func (h *BattleHandler) GetState(c *gin.Context) {
	eng, err := h.sessions.EngineFor(currentPlayerUUID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	c.JSON(http.StatusOK, h.state(c, eng))
}

type engageRequest struct {
	ActorID string `json:"actor_id"`
}

// Engage commits the player to fight the current spawn. A stale or
// already-engaged actor id is not an error: the engine ignores it and
// the response simply reflects the current state.
func (h *BattleHandler) Engage(c *gin.Context) {
	var req engageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerUUID := currentPlayerUUID(c)
	if err := h.sessions.Engage(playerUUID, req.ActorID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	eng, err := h.sessions.EngineFor(playerUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrBattleUnavail})
		return
	}
	c.JSON(http.StatusOK, h.state(c, eng))
}

// GetLedger returns the persisted encounter history, newest first.
func (h *BattleHandler) GetLedger(c *gin.Context) {
	p, err := service.RefreshPlayer(h.repo, currentPlayerUUID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	limit := h.ledgerLimit
	if s := c.Query("limit"); s != "" {
		if n, aerr := strconv.Atoi(s); aerr == nil && n > 0 && n <= h.ledgerLimit {
			limit = n
		}
	}
	entries, err := h.repo.ListEncounterLog(p.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	c.JSON(http.StatusOK, out)
}

type unlockRequest struct {
	Unlocked bool `json:"unlocked"`
}

// SetUnlocked opens or closes the encounter gate for the save.
func (h *BattleHandler) SetUnlocked(c *gin.Context) {
	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.SetBattlesUnlocked(h.repo, h.sessions, currentPlayerUUID(c), req.Unlocked)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"battles_unlocked": p.BattlesUnlocked})
}
