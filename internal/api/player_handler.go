package api

import (
	"net/http"
	"strconv"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/constants"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/service"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/storage"
	"github.com/gin-gonic/gin"
)

// PlayerHandler groups the idle-game HTTP handlers: save state, clicks
// and assistant purchases.
type PlayerHandler struct {
	repo     storage.Repository
	sessions *service.BattleSessions
	catalog  service.Catalog
}

func NewPlayerHandler(repo storage.Repository, sessions *service.BattleSessions, catalog service.Catalog) *PlayerHandler {
	return &PlayerHandler{repo: repo, sessions: sessions, catalog: catalog}
}

// GetPlayer returns the save with pending idle income folded in.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	p, err := service.RefreshPlayer(h.repo, currentPlayerUUID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	c.JSON(http.StatusOK, out)
}

type clickRequest struct {
	Count int `json:"count"`
}

// Click credits manual clicks. Each click is also a chance for an
// opposing actor to start spawning.
func (h *PlayerHandler) Click(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.Click(h.repo, h.sessions, currentPlayerUUID(c), req.Count)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListAssistants returns the catalog with per-kind owned counts and
// next-tier prices for the current save.
func (h *PlayerHandler) ListAssistants(c *gin.Context) {
	p, err := service.RefreshPlayer(h.repo, currentPlayerUUID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	owned := make(map[string]int)
	for _, a := range p.Assistants {
		owned[a.Kind]++
	}
	type catalogEntry struct {
		Key         string  `json:"key"`
		DisplayName string  `json:"display_name"`
		Rate        float64 `json:"rate"`
		Owned       int     `json:"owned"`
		NextCost    float64 `json:"next_cost"`
	}
	entries := make([]catalogEntry, 0, len(h.catalog))
	for _, kind := range h.catalog {
		entries = append(entries, catalogEntry{
			Key:         kind.Key,
			DisplayName: kind.DisplayName,
			Rate:        kind.Rate,
			Owned:       owned[kind.Key],
			NextCost:    service.AssistantCost(kind, owned[kind.Key]),
		})
	}
	c.JSON(http.StatusOK, gin.H{"assistants": entries, "snowballs": p.Snowballs})
}

type buyRequest struct {
	Kind string `json:"kind"`
}

// BuyAssistant purchases the next assistant of a kind.
func (h *PlayerHandler) BuyAssistant(c *gin.Context) {
	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.BuyAssistant(h.repo, h.catalog, currentPlayerUUID(c), req.Kind)
	switch err {
	case nil:
	case service.ErrUnknownAssistantKind:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownKind})
		return
	case service.ErrNotEnoughSnowballs:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnoughSnow})
		return
	case service.ErrPlayerNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	c.JSON(http.StatusOK, out)
}

type buffsRequest struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Stacked   bool   `json:"stacked"`
}

// SetBuffs equips the player's battle buffs.
func (h *PlayerHandler) SetBuffs(c *gin.Context) {
	var req buffsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.SetBuffs(h.repo, currentPlayerUUID(c), req.Primary, req.Secondary, req.Stacked)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buff_primary": p.BuffPrimary, "buff_secondary": p.BuffSecondary, "buff_stacked": p.BuffStacked})
}

// ListLeaderboard returns the top saves by snowball balance, limited
// to top 10 by default.
func (h *PlayerHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	type leaderboardRow struct {
		PlayerName   string  `json:"player_name"`
		Snowballs    float64 `json:"snowballs"`
		AbilityLevel int     `json:"ability_level"`
	}
	rows := make([]leaderboardRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, leaderboardRow{PlayerName: p.PlayerName, Snowballs: p.Snowballs, AbilityLevel: p.AbilityLevel})
	}
	c.JSON(http.StatusOK, rows)
}
