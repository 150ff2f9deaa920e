package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/setting"
)

// Well-known setting keys.
const (
	KeyGmailTokens     = "gmail_tokens"
	KeyBusinessProfile = "business_profile"
)

// ErrNotFound is returned when a setting key has never been written.
var ErrNotFound = errors.New("setting not found")

// ErrVersionConflict is returned by CompareAndSwap when another writer
// updated the row first. Callers should re-read and decide whether their
// write is still needed.
var ErrVersionConflict = errors.New("setting version conflict")

// Service persists process-wide settings. The gmail_tokens row is shared
// between interactive requests and the cron jobs, so refreshes go through
// CompareAndSwap rather than blind writes.
type Service struct {
	client *ent.Client
}

// NewService creates a new settings service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Get returns the value and current version for key.
func (s *Service) Get(ctx context.Context, key string) (map[string]interface{}, int, error) {
	row, err := s.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to fetch setting %s: %w", key, err)
	}
	return row.Value, row.Version, nil
}

// Put upserts the value for key unconditionally, bumping the version.
func (s *Service) Put(ctx context.Context, key string, value map[string]interface{}) error {
	row, err := s.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to fetch setting %s: %w", key, err)
		}
		_, err = s.client.Setting.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create setting %s: %w", key, err)
		}
		return nil
	}

	_, err = row.Update().
		SetValue(value).
		SetVersion(row.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update setting %s: %w", key, err)
	}
	return nil
}

// CompareAndSwap writes value only if the row is still at expectedVersion.
// Returns ErrVersionConflict when a concurrent writer got there first, which
// keeps duplicate token refreshes from clobbering each other.
func (s *Service) CompareAndSwap(ctx context.Context, key string, value map[string]interface{}, expectedVersion int) error {
	n, err := s.client.Setting.Update().
		Where(
			setting.Key(key),
			setting.Version(expectedVersion),
		).
		SetValue(value).
		SetVersion(expectedVersion + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to swap setting %s: %w", key, err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}

// Delete removes a setting row. Missing keys are not an error.
func (s *Service) Delete(ctx context.Context, key string) error {
	_, err := s.client.Setting.Delete().
		Where(setting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
