package mappers

import "time"

func fromMillis(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func fromMillisPtr(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := fromMillis(*millis)
	return &t
}

func toMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
