package service

import "github.com/tradepulse/tradepulse/internal/domain"

// NotificationService defines the interface for sending operator alerts
type NotificationService interface {
	SendTradeAlert(trade domain.TradeRecord) error
	SendGuardAlert(trendPercent float64, status domain.SessionStatus) error
	SendDigest(digest domain.DailyDigest) error
}
