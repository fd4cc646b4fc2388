// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Device type constants
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// Experimental condition constants
const (
	ConditionARMenu     = "ar_menu"
	ConditionMenuImage0 = "menu_image_0"
	ConditionMenuImage1 = "menu_image_1"
)

// SkippedValue is the sentinel recorded when a participant explicitly skips
// a question. Distinct from any real answer so a passed step always leaves a
// row in the response store.
const SkippedValue = "SKIPPED"

// Request types

type StartSurveyRequest struct {
	DeviceType    string `json:"deviceType"`
	ConditionType string `json:"conditionType"`
	Fingerprint   string `json:"fingerprint,omitempty"`
}

type SaveResponseRequest struct {
	SessionID     string `json:"sessionId"`
	QuestionID    string `json:"questionId"`
	ResponseValue string `json:"responseValue"`
}

type SessionIDRequest struct {
	SessionID string `json:"sessionId"`
}

type UpdateResponseRequest struct {
	QuestionID    string `json:"questionId"`
	ResponseValue string `json:"responseValue"`
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type StatsResponse struct {
	Total       int            `json:"total"`
	Completed   int            `json:"completed"`
	ScreenedOut int            `json:"screenedOut"`
	ByCondition map[string]int `json:"byCondition"`
}

// Domain types

type Session struct {
	ID            string     `json:"id"`
	ConditionType string     `json:"conditionType"`
	DeviceType    string     `json:"deviceType"`
	StartedAt     time.Time  `json:"startedAt"`
	CompletedAt   *time.Time `json:"completedAt"`
	IsScreenedOut bool       `json:"isScreenedOut"`
	Fingerprint   *string    `json:"-"` // Resumption token, never exposed in JSON
	IsExisting    bool       `json:"isExisting,omitempty"`
	// Ephemeral marks a session that could not be persisted and lives only in
	// the participant's browser. Such sessions never appear in exports.
	Ephemeral bool `json:"ephemeral,omitempty"`
}

type Response struct {
	SessionID     string    `json:"sessionId"`
	QuestionID    string    `json:"questionId"`
	ResponseValue string    `json:"responseValue"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SessionWithResponses joins a session with its answered questions for the
// admin surface.
type SessionWithResponses struct {
	Session
	Responses map[string]string `json:"responses"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
