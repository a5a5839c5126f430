package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voiceclock/alarm-backend/internal/services"
	"github.com/voiceclock/alarm-backend/internal/types"
)

type PersonaHandler struct {
	personaService services.PersonaService
}

func NewPersonaHandler(personaService services.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

func (ph *PersonaHandler) Create(c *gin.Context) {
	var payload types.PersonaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	personaID, err := ph.personaService.Create(c.Request.Context(), payload)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "persona created successfully", gin.H{"id": personaID})
}

func (ph *PersonaHandler) Get(c *gin.Context) {
	persona, err := ph.personaService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "ok", persona.Payload())
}

// List serves both listing and searching; active_only defaults to true,
// matching the original API.
func (ph *PersonaHandler) List(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") != "false" && c.DefaultQuery("active_only", "true") != "0"
	search := c.Query("search")

	personas, err := ph.personaService.List(c.Request.Context(), activeOnly, search)
	if err != nil {
		RespondError(c, err)
		return
	}
	payloads := make([]types.PersonaPayload, 0, len(personas))
	for _, persona := range personas {
		payloads = append(payloads, persona.Payload())
	}
	RespondSuccess(c, http.StatusOK, "ok", payloads)
}

func (ph *PersonaHandler) Update(c *gin.Context) {
	var update types.PersonaUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := ph.personaService.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "persona updated successfully", nil)
}

func (ph *PersonaHandler) Delete(c *gin.Context) {
	if err := ph.personaService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "persona deleted successfully", nil)
}

func (ph *PersonaHandler) Toggle(c *gin.Context) {
	var body struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}
	if err := ph.personaService.Toggle(c.Request.Context(), c.Param("id"), active); err != nil {
		RespondError(c, err)
		return
	}
	message := "persona activated"
	if !active {
		message = "persona deactivated"
	}
	RespondSuccess(c, http.StatusOK, message, nil)
}
