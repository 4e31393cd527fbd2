package store

import (
	"time"

	"storeadmin/internal/models"
)

// Notify appends a notification and schedules its removal after the
// configured TTL. The timer handle is kept so Dismiss can cancel it.
// Returns the notification id.
func (s *Store) Notify(message string, kind models.NotificationKind) int64 {
	s.mu.Lock()

	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastNotifyID {
		id = s.lastNotifyID + 1
	}
	s.lastNotifyID = id

	s.notifications = append(s.notifications, models.Notification{
		ID:        id,
		Message:   message,
		Kind:      kind,
		Timestamp: now,
	})
	s.timers[id] = time.AfterFunc(s.notifyTTL, func() { s.expire(id) })
	s.mu.Unlock()

	return id
}

// Notifications returns a copy of the active notification queue in
// creation order.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Dismiss removes a notification before its expiry and cancels the
// scheduled removal. Reports whether the id was present.
func (s *Store) Dismiss(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	return s.removeNotificationLocked(id)
}

func (s *Store) expire(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, id)
	s.removeNotificationLocked(id)
}

func (s *Store) removeNotificationLocked(id int64) bool {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}
