package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voiceclock/alarm-backend/internal/services"
	"github.com/voiceclock/alarm-backend/internal/types"
)

type AlarmHandler struct {
	alarmService services.AlarmService
}

func NewAlarmHandler(alarmService services.AlarmService) *AlarmHandler {
	return &AlarmHandler{alarmService: alarmService}
}

func (ah *AlarmHandler) Create(c *gin.Context) {
	var payload types.AlarmPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	alarmID, err := ah.alarmService.Create(c.Request.Context(), payload)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "alarm created successfully", gin.H{"alarm_id": alarmID})
}

func (ah *AlarmHandler) Get(c *gin.Context) {
	alarm, err := ah.alarmService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "ok", alarm.Payload())
}

func (ah *AlarmHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	enabledOnly := c.Query("enabled_only") == "1" || c.Query("enabled_only") == "true"

	alarms, err := ah.alarmService.List(c.Request.Context(), userID, enabledOnly)
	if err != nil {
		RespondError(c, err)
		return
	}
	payloads := make([]types.AlarmPayload, 0, len(alarms))
	for _, alarm := range alarms {
		payloads = append(payloads, alarm.Payload())
	}
	RespondSuccess(c, http.StatusOK, "ok", payloads)
}

func (ah *AlarmHandler) Update(c *gin.Context) {
	var update types.AlarmUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := ah.alarmService.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "alarm updated successfully", nil)
}

func (ah *AlarmHandler) Delete(c *gin.Context) {
	if err := ah.alarmService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "alarm deleted successfully", nil)
}

// Toggle reads the desired flag from the body, defaulting to enabled
// when the field is absent.
func (ah *AlarmHandler) Toggle(c *gin.Context) {
	var body struct {
		IsEnabled *bool `json:"is_enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	enabled := true
	if body.IsEnabled != nil {
		enabled = *body.IsEnabled
	}
	if err := ah.alarmService.Toggle(c.Request.Context(), c.Param("id"), enabled); err != nil {
		RespondError(c, err)
		return
	}
	message := "alarm enabled"
	if !enabled {
		message = "alarm disabled"
	}
	RespondSuccess(c, http.StatusOK, message, nil)
}
