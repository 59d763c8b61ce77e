package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultNotificationLimit = 50

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	row := fromNotificationDomain(n)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	n.ID = row.ID
	n.CreatedAt = row.CreatedAt

	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var row model.NotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return toNotificationDomain(&row), nil
}

func (repo *notificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	var rows []model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? OR is_global = ?", userID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	var globalIDs []uuid.UUID
	for i := range rows {
		if rows[i].IsGlobal {
			globalIDs = append(globalIDs, rows[i].ID)
		}
	}

	readGlobal := make(map[uuid.UUID]struct{}, len(globalIDs))
	if len(globalIDs) > 0 {
		var readIDs []uuid.UUID
		err := repo.db.WithContext(ctx).
			Model(&model.NotificationReadModel{}).
			Where("user_id = ? AND notification_id IN ?", userID, globalIDs).
			Pluck("notification_id", &readIDs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to load read markers")
		}
		for _, id := range readIDs {
			readGlobal[id] = struct{}{}
		}
	}

	notifications := make([]*entity.Notification, 0, len(rows))
	for i := range rows {
		n := toNotificationDomain(&rows[i])
		if n.IsGlobal {
			_, n.Read = readGlobal[n.ID]
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var personal int64
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_global = ? AND read = ?", userID, false, false).
		Count(&personal).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	var global int64
	err = repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("is_global = ?", true).
		Where("NOT EXISTS (SELECT 1 FROM notification_reads nr WHERE nr.notification_id = notifications.id AND nr.user_id = ?)", userID).
		Count(&global).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread global notifications")
	}

	return personal + global, nil
}

// MarkRead fails with ErrNotificationNotFound when the notification is not visible to userID.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	n, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !n.IsVisibleTo(userID) {
		return repository.ErrNotificationNotFound
	}

	if n.IsGlobal {
		return repo.markGlobalRead(ctx, userID, []uuid.UUID{id})
	}

	if err := repo.db.WithContext(ctx).Model(&model.NotificationModel{}).Where("id = ?", id).Update("read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notification read")
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.NotificationModel{}).
			Where("user_id = ? AND is_global = ? AND read = ?", userID, false, false).
			Update("read", true).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications read")
		}

		var globalIDs []uuid.UUID
		err = tx.Model(&model.NotificationModel{}).
			Where("is_global = ?", true).
			Where("NOT EXISTS (SELECT 1 FROM notification_reads nr WHERE nr.notification_id = notifications.id AND nr.user_id = ?)", userID).
			Pluck("id", &globalIDs).Error
		if err != nil {
			return errors.Wrap(err, "failed to find unread global notifications")
		}

		return (&notificationRepository{db: tx}).markGlobalRead(ctx, userID, globalIDs)
	})
}

func (repo *notificationRepository) markGlobalRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	now := time.Now()
	markers := make([]model.NotificationReadModel, 0, len(ids))
	for _, id := range ids {
		markers = append(markers, model.NotificationReadModel{NotificationID: id, UserID: userID, ReadAt: now})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&markers).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record read markers")
	}

	return nil
}

func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).Delete(&model.NotificationReadModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete read markers")
		}

		result := tx.Where("id = ?", id).Delete(&model.NotificationModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notification")
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotificationNotFound
		}

		return nil
	})
}

func toNotificationDomain(m *model.NotificationModel) *entity.Notification {
	n := &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      entity.NotificationType(m.Type),
		IsGlobal:  m.IsGlobal,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}

	meta := m.Metadata.Data()
	if meta != (entity.NotificationMetadata{}) {
		n.Metadata = &meta
	}

	return n
}

func fromNotificationDomain(n *entity.Notification) *model.NotificationModel {
	m := &model.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsGlobal:  n.IsGlobal,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if n.IsGlobal {
		m.UserID = nil
		m.Read = false
	}
	if n.Metadata != nil {
		m.Metadata = datatypes.NewJSONType(*n.Metadata)
	} else {
		m.Metadata = datatypes.NewJSONType(entity.NotificationMetadata{})
	}

	return m
}
