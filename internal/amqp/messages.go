package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"noumi/internal/recap"
)

// RecapMessage announces a built weekly recap with its headline numbers.
// Consumers fetch the full recap over HTTP if they need it.
type RecapMessage struct {
	RecapID        string           `json:"recap_id"`
	Week           string           `json:"week"`
	WeekStart      time.Time        `json:"week_start"`
	WeekEnd        time.Time        `json:"week_end"`
	TrendCategory  string           `json:"trend_category,omitempty"`
	TrendDecrease  *decimal.Decimal `json:"trend_decrease,omitempty"`
	GoalPercentage *int             `json:"goal_percentage,omitempty"`
	LongestStreak  *int             `json:"longest_streak,omitempty"`
	Warnings       int              `json:"warnings"`
	Timestamp      time.Time        `json:"timestamp"`
}

// NewRecapMessage summarizes r.
func NewRecapMessage(r *recap.WeeklyRecap) *RecapMessage {
	msg := &RecapMessage{
		RecapID:       r.ID,
		Week:          r.WeekLabel,
		WeekStart:     r.Week.Start,
		WeekEnd:       r.Week.End,
		LongestStreak: r.LongestStreak,
		Warnings:      len(r.Warnings),
		Timestamp:     time.Now(),
	}
	if r.Trend != nil {
		d := r.Trend.DecreaseAmount
		msg.TrendCategory = r.Trend.Category
		msg.TrendDecrease = &d
	}
	if r.Goal != nil {
		pct := r.Goal.Percentage
		msg.GoalPercentage = &pct
	}
	return msg
}

// ToJSON converts the message to JSON bytes
func (m *RecapMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecapMessageFromJSON decodes a message and checks it names a recap.
func RecapMessageFromJSON(data []byte) (*RecapMessage, error) {
	var msg RecapMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.RecapID == "" {
		return nil, fmt.Errorf("recap message without recap_id")
	}
	return &msg, nil
}
