package models

type Task struct {
	ID              string  `json:"_id"`
	Salesman        NameRef `json:"salesman"`
	TaskDescription string  `json:"taskDescription"`
	DueDate         string  `json:"dueDate"`
	Status          string  `json:"status"`
}

type TaskRequest struct {
	SalesmanID      string `json:"salesmanId"`
	TaskDescription string `json:"taskDescription"`
	DueDate         string `json:"dueDate"`
}

// Attendance is a salesman's check-in record. Read-only in the dashboard.
type Attendance struct {
	ID           string  `json:"_id"`
	Salesman     NameRef `json:"salesman"`
	CheckInTime  string  `json:"checkInTime"`
	CheckOutTime string  `json:"checkOutTime"`
	Location     string  `json:"location"`
}
