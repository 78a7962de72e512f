package models

// ScoreEntry representa la puntuación FP de un usuario
type ScoreEntry struct {
	UserID int64 `json:"userId"`
	FP     int   `json:"fp"`
}

// WarningRecord representa una advertencia individual del historial
type WarningRecord struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
	Date   string `json:"date"` // UTC, formato 2006-01-02
}

// WarnCountEntry representa el total de advertencias de un usuario
type WarnCountEntry struct {
	UserID int64 `json:"userId"`
	Count  int   `json:"count"`
}
