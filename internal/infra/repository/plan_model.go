package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type SessionBlockJSON struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	TaskID string `json:"task_id"`
}

type BlocksJSONB []SessionBlockJSON

func (b *BlocksJSONB) Scan(value interface{}) error {
	if value == nil {
		*b = nil

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan BlocksJSONB: expected []byte")
	}

	return json.Unmarshal(bytes, b)
}

func (b BlocksJSONB) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil //nolint:nilnil
	}

	return json.Marshal(b)
}

type PlannedDayModel struct {
	ID        string      `gorm:"column:id;type:uuid;primaryKey"`
	UserID    string      `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_study_plan_days_user_id_date"`
	Date      time.Time   `gorm:"column:date;type:date;not null;uniqueIndex:idx_study_plan_days_user_id_date"`
	Blocks    BlocksJSONB `gorm:"column:blocks;type:jsonb;not null"`
	CreatedAt time.Time   `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time   `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (PlannedDayModel) TableName() string {
	return "study_plan_days"
}

func (m *PlannedDayModel) ToEntity() (domain.PlannedDay, error) {
	date := domain.DateFromTime(m.Date)

	blocks := make([]domain.SessionBlock, 0, len(m.Blocks))

	for _, b := range m.Blocks {
		start, err := domain.ClockTimeFromString(b.Start)
		if err != nil {
			return domain.PlannedDay{}, err
		}

		end, err := domain.ClockTimeFromString(b.End)
		if err != nil {
			return domain.PlannedDay{}, err
		}

		window, err := domain.NewTimeWindow(start, end)
		if err != nil {
			return domain.PlannedDay{}, err
		}

		taskID, err := domain.TaskIDFromString(b.TaskID)
		if err != nil {
			return domain.PlannedDay{}, err
		}

		block, err := domain.NewSessionBlock(window, taskID)
		if err != nil {
			return domain.PlannedDay{}, err
		}

		blocks = append(blocks, block)
	}

	return domain.NewPlannedDay(date, blocks)
}

func PlannedDayFromEntity(userID domain.UserID, day domain.PlannedDay) *PlannedDayModel {
	domainBlocks := day.Blocks()

	blocks := make(BlocksJSONB, 0, len(domainBlocks))
	for _, b := range domainBlocks {
		blocks = append(blocks, SessionBlockJSON{
			Start:  b.Window().Start().String(),
			End:    b.Window().End().String(),
			TaskID: b.TaskID().String(),
		})
	}

	return &PlannedDayModel{
		UserID: userID.String(),
		Date:   day.Date().Time(),
		Blocks: blocks,
	}
}
