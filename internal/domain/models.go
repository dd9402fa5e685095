package domain

import (
	"time"
)

// Office представляет филиал, которому принадлежат сотрудники
type Office struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Code          string    `json:"code" gorm:"type:varchar(20);not null;uniqueIndex:office_code_idx"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	ManagementPIN *string   `json:"-" gorm:"column:management_pin;type:varchar(4)"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Office) TableName() string {
	return "offices"
}

// Employee представляет сотрудника
type Employee struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string    `json:"code" gorm:"type:varchar(20);not null;uniqueIndex:emp_code_idx"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index:emp_office_name_idx,priority:2"`
	OfficeID  int64     `json:"office_id" gorm:"not null;index:emp_office_name_idx,priority:1"`
	Position  string    `json:"position" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Office *Office `json:"-" gorm:"foreignKey:OfficeID;constraint:OnDelete:RESTRICT"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Record - данные одного сотрудника за один календарный день.
// На пару (employee, date) существует не более одной записи.
type Record struct {
	ID                   int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID           int64      `json:"employee_id" gorm:"not null;uniqueIndex:uniq_record_per_day_employee,priority:1"`
	Date                 time.Time  `json:"date" gorm:"type:date;not null;uniqueIndex:uniq_record_per_day_employee,priority:2;index:record_date_idx"`
	WorkStartTime        *ClockTime `json:"work_start_time" gorm:"type:time"`
	WorkEndTime          *ClockTime `json:"work_end_time" gorm:"type:time"`
	WorkType             WorkState  `json:"work_type" gorm:"type:varchar(8)"`
	SupervisorSelectedID *int64     `json:"supervisor_selected_id" gorm:"index"`
	CreatedAt            time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Employee           *Employee               `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	SupervisorSelected *Employee               `json:"-" gorm:"foreignKey:SupervisorSelectedID;constraint:OnDelete:SET NULL"`
	Items              []RecordItem            `json:"items,omitempty" gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
	Confirmation       *SupervisorConfirmation `json:"-" gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Record) TableName() string {
	return "records"
}

// State возвращает текущее состояние дня записи.
func (r *Record) State() DayState {
	return DayState{
		WorkType: r.WorkType,
		Start:    r.WorkStartTime,
		End:      r.WorkEndTime,
	}
}

// SetState переносит состояние дня в поля записи.
func (r *Record) SetState(s DayState) {
	r.WorkType = s.WorkType
	r.WorkStartTime = s.Start
	r.WorkEndTime = s.End
}

// Status - производный статус записи
func (r *Record) Status() Status {
	return DeriveStatus(r.State())
}

// Reset возвращает поля дня к пустому состоянию.
func (r *Record) Reset() {
	r.SetState(DayState{})
	r.SupervisorSelectedID = nil
	r.SupervisorSelected = nil
	r.Items = nil
	r.Confirmation = nil
}

// Item возвращает позицию записи по категории, если она загружена.
func (r *Record) Item(category Category) (RecordItem, bool) {
	for _, it := range r.Items {
		if it.Category == category {
			return it, true
		}
	}
	return RecordItem{}, false
}

// RecordItem - результат проверки одной категории внутри записи
type RecordItem struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RecordID  int64     `json:"record_id" gorm:"not null;uniqueIndex:uniq_item_per_record_category,priority:1"`
	Category  Category  `json:"category" gorm:"type:varchar(40);not null;uniqueIndex:uniq_item_per_record_category,priority:2;index:item_category_idx"`
	IsNormal  bool      `json:"is_normal" gorm:"not null"`
	Value     *float64  `json:"value"`
	ValueText *string   `json:"value_text" gorm:"type:varchar(50)"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (RecordItem) TableName() string {
	return "record_items"
}

// NewRecordItem собирает позицию; значение попадает ровно в одну колонку
// в зависимости от его вида.
func NewRecordItem(category Category, isNormal bool, value ItemValue, comment string) RecordItem {
	item := RecordItem{
		Category: category,
		IsNormal: isNormal,
		Comment:  comment,
	}
	if n, ok := value.Number(); ok {
		item.Value = &n
	}
	if t, ok := value.Text(); ok {
		item.ValueText = &t
	}
	return item
}

// Validate проверяет инварианты позиции.
func (i RecordItem) Validate() error {
	if !i.IsNormal && i.Comment == "" {
		return ErrCommentRequired
	}
	if i.Category == CategoryTemperature && i.Value != nil && *i.Value >= FeverThreshold && i.IsNormal {
		return ErrFeverMarkedNormal
	}
	return nil
}

// SupervisorConfirmation - подтверждение записи ответственным (не более одного на запись)
type SupervisorConfirmation struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RecordID      int64     `json:"record_id" gorm:"not null;uniqueIndex:uniq_confirmation_record"`
	ConfirmedByID *int64    `json:"confirmed_by_id" gorm:"index"`
	ConfirmedAt   time.Time `json:"confirmed_at" gorm:"not null"`

	ConfirmedBy *Employee `json:"-" gorm:"foreignKey:ConfirmedByID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (SupervisorConfirmation) TableName() string {
	return "supervisor_confirmations"
}
