package models

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

// Task is a growth task the parent assigned to a child.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ReminderTime string     `json:"reminder_time"` // free text, e.g. "今晚 7:00"
	Status       TaskStatus `json:"status"`
}

func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
