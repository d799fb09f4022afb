package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunalog/lunalog-backend/internal/models"
	"gorm.io/gorm"
)

type RemoteConfigHandler struct {
	db *gorm.DB
}

func NewRemoteConfigHandler(db *gorm.DB) *RemoteConfigHandler {
	return &RemoteConfigHandler{db: db}
}

// GetConfig returns all remote config entries as a typed map (public).
func (h *RemoteConfigHandler) GetConfig(c *fiber.Ctx) error {
	var configs []models.RemoteConfig
	if err := h.db.Find(&configs).Error; err != nil {
		return serverError(c, "Failed to fetch configuration")
	}

	result := make(map[string]interface{})
	for _, cfg := range configs {
		result[cfg.Key] = decodeConfigValue(cfg)
	}

	return c.JSON(result)
}

// SetConfigKey sets or updates a config key (admin only).
func (h *RemoteConfigHandler) SetConfigKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return badRequest(c, "Key parameter is required")
	}

	var payload struct {
		Value string `json:"value"`
		Type  string `json:"type"` // string, bool, int, json
	}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if payload.Value == "" {
		return badRequest(c, "Value is required")
	}
	if payload.Type == "" {
		payload.Type = "string"
	}

	var config models.RemoteConfig
	err := h.db.Where("key = ?", key).First(&config).Error
	if err == gorm.ErrRecordNotFound {
		config = models.RemoteConfig{
			Key:   key,
			Value: payload.Value,
			Type:  payload.Type,
		}
		if err := h.db.Create(&config).Error; err != nil {
			return serverError(c, "Failed to create config")
		}
	} else if err != nil {
		return serverError(c, "Failed to query config")
	} else {
		config.Value = payload.Value
		config.Type = payload.Type
		config.UpdatedAt = time.Now()
		if err := h.db.Save(&config).Error; err != nil {
			return serverError(c, "Failed to update config")
		}
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Config updated successfully",
		"config": fiber.Map{
			"key":   config.Key,
			"value": config.Value,
			"type":  config.Type,
		},
	})
}

// DeleteConfigKey deletes a config key (admin only).
func (h *RemoteConfigHandler) DeleteConfigKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return badRequest(c, "Key parameter is required")
	}

	result := h.db.Where("key = ?", key).Delete(&models.RemoteConfig{})
	if result.Error != nil {
		return serverError(c, "Failed to delete config")
	}
	if result.RowsAffected == 0 {
		return notFound(c, "Config not found")
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Config deleted successfully",
	})
}

// SeedDefaults creates missing default config keys on startup.
func (h *RemoteConfigHandler) SeedDefaults() error {
	defaults := []models.RemoteConfig{
		{Key: "maintenance_mode", Value: "false", Type: "bool"},
		{Key: "min_app_version", Value: "1.0.0", Type: "string"},
		{Key: "announcement_title", Value: "", Type: "string"},
		{Key: "announcement_message", Value: "", Type: "string"},
	}

	for _, cfg := range defaults {
		var existing models.RemoteConfig
		err := h.db.Where("key = ?", cfg.Key).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := h.db.Create(&cfg).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

func decodeConfigValue(cfg models.RemoteConfig) interface{} {
	var value interface{}
	switch cfg.Type {
	case "bool":
		value, _ = strconv.ParseBool(cfg.Value)
	case "int":
		value, _ = strconv.Atoi(cfg.Value)
	case "json":
		json.Unmarshal([]byte(cfg.Value), &value)
	default:
		value = cfg.Value
	}
	return value
}
