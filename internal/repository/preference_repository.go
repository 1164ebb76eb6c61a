package repository

import (
	"context"
	"encoding/json"

	"study_tracker_backend/internal/model"
)

// PreferenceRepository theme / remindersEnabled 两个 UI 偏好键
type PreferenceRepository struct {
	Store KVStore
}

func NewPreferenceRepository(store KVStore) *PreferenceRepository {
	return &PreferenceRepository{Store: store}
}

func (r *PreferenceRepository) Load(ctx context.Context) (model.Preferences, error) {
	prefs := model.Preferences{Theme: "dark"}

	if data, err := r.Store.Load(ctx, KeyTheme); err == nil {
		var theme string
		if json.Unmarshal(data, &theme) == nil && theme != "" {
			prefs.Theme = theme
		}
	}
	if data, err := r.Store.Load(ctx, KeyReminders); err == nil {
		var enabled bool
		if json.Unmarshal(data, &enabled) == nil {
			prefs.RemindersEnabled = enabled
		}
	}
	return prefs, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, prefs model.Preferences) error {
	theme, err := json.Marshal(prefs.Theme)
	if err != nil {
		return err
	}
	if err := r.Store.Save(ctx, KeyTheme, theme); err != nil {
		return err
	}
	reminders, err := json.Marshal(prefs.RemindersEnabled)
	if err != nil {
		return err
	}
	return r.Store.Save(ctx, KeyReminders, reminders)
}
