package models

import "time"

// CurrentTimeModel is a point in time in both readable and epoch form.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// NewCurrentTimeModel formats t as RFC 3339 and epoch milliseconds.
func NewCurrentTimeModel(t time.Time) CurrentTimeModel {
	return CurrentTimeModel{
		ReadableTime: t.Format(time.RFC3339),
		Time:         t.UnixNano() / int64(time.Millisecond),
	}
}
