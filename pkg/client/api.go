package client

import (
	"context"
	"fmt"
	"net/http"
)

// AuthClient covers /auth
type AuthClient struct{ c *Client }

// Register creates an account and keeps its token
func (a *AuthClient) Register(ctx context.Context, in Register) (*Session, error) {
	var s Session
	if err := a.c.do(ctx, http.MethodPost, "/auth/register", in, &s); err != nil {
		return nil, err
	}
	a.c.SetToken(s.Token)
	return &s, nil
}

// Login signs in and keeps the token
func (a *AuthClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	body := map[string]string{"email": email, "password": password}
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", body, &s); err != nil {
		return nil, err
	}
	a.c.SetToken(s.Token)
	return &s, nil
}

func (a *AuthClient) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := a.c.do(ctx, http.MethodGet, "/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// EmergencyClient covers /emergencies
type EmergencyClient struct{ c *Client }

func (e *EmergencyClient) Create(ctx context.Context, in NewReport) (*Report, error) {
	var r Report
	if err := e.c.do(ctx, http.MethodPost, "/emergencies", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (e *EmergencyClient) List(ctx context.Context) ([]Report, error) {
	var out []Report
	err := e.c.do(ctx, http.MethodGet, "/emergencies", nil, &out)
	return out, err
}

func (e *EmergencyClient) Mine(ctx context.Context) ([]Report, error) {
	var out []Report
	err := e.c.do(ctx, http.MethodGet, "/emergencies/my-reports", nil, &out)
	return out, err
}

func (e *EmergencyClient) Get(ctx context.Context, id uint) (*Report, error) {
	var r Report
	if err := e.c.do(ctx, http.MethodGet, fmt.Sprintf("/emergencies/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (e *EmergencyClient) UpdateStatus(ctx context.Context, id uint, status string) (*Report, error) {
	var r Report
	body := map[string]string{"status": status}
	if err := e.c.do(ctx, http.MethodPatch, fmt.Sprintf("/emergencies/%d/status", id), body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (e *EmergencyClient) Analytics(ctx context.Context) ([]ReportStats, error) {
	var out []ReportStats
	err := e.c.do(ctx, http.MethodGet, "/emergencies/analytics", nil, &out)
	return out, err
}

// TaskClient covers /tasks
type TaskClient struct{ c *Client }

func (t *TaskClient) Create(ctx context.Context, in NewTask) (*Task, error) {
	var task Task
	if err := t.c.do(ctx, http.MethodPost, "/tasks", in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TaskClient) List(ctx context.Context) ([]Task, error) {
	var out []Task
	err := t.c.do(ctx, http.MethodGet, "/tasks", nil, &out)
	return out, err
}

func (t *TaskClient) Mine(ctx context.Context) ([]Task, error) {
	var out []Task
	err := t.c.do(ctx, http.MethodGet, "/tasks/my-tasks", nil, &out)
	return out, err
}

func (t *TaskClient) Get(ctx context.Context, id uint) (*Task, error) {
	var task Task
	if err := t.c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TaskClient) Assign(ctx context.Context, id, workerID uint) (*Task, error) {
	var task Task
	body := map[string]uint{"assigned_worker_id": workerID}
	if err := t.c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/assign", id), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus changes the task status; nil remarks keeps the stored ones
func (t *TaskClient) UpdateStatus(ctx context.Context, id uint, status string, remarks *string) (*Task, error) {
	var task Task
	body := struct {
		TaskStatus string  `json:"task_status"`
		Remarks    *string `json:"remarks,omitempty"`
	}{status, remarks}
	if err := t.c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", id), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ShelterClient covers /shelters
type ShelterClient struct{ c *Client }

func (s *ShelterClient) Create(ctx context.Context, in NewShelter) (*Shelter, error) {
	var sh Shelter
	if err := s.c.do(ctx, http.MethodPost, "/shelters", in, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *ShelterClient) List(ctx context.Context) ([]Shelter, error) {
	var out []Shelter
	err := s.c.do(ctx, http.MethodGet, "/shelters", nil, &out)
	return out, err
}

func (s *ShelterClient) Available(ctx context.Context) ([]Shelter, error) {
	var out []Shelter
	err := s.c.do(ctx, http.MethodGet, "/shelters/available", nil, &out)
	return out, err
}

func (s *ShelterClient) Get(ctx context.Context, id uint) (*Shelter, error) {
	var sh Shelter
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/shelters/%d", id), nil, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *ShelterClient) UpdateOccupancy(ctx context.Context, id uint, occupancy int) (*Shelter, error) {
	var sh Shelter
	body := map[string]int{"current_occupancy": occupancy}
	if err := s.c.do(ctx, http.MethodPatch, fmt.Sprintf("/shelters/%d/occupancy", id), body, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

// ByOccupancy ranks shelters fullest first
func (s *ShelterClient) ByOccupancy(ctx context.Context) ([]Shelter, error) {
	var out []Shelter
	err := s.c.do(ctx, http.MethodGet, "/shelters/analytics/occupancy", nil, &out)
	return out, err
}

// ResourceClient covers /resources
type ResourceClient struct{ c *Client }

func (r *ResourceClient) Create(ctx context.Context, in NewResource) (*Resource, error) {
	var res Resource
	if err := r.c.do(ctx, http.MethodPost, "/resources", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResourceClient) List(ctx context.Context) ([]Resource, error) {
	var out []Resource
	err := r.c.do(ctx, http.MethodGet, "/resources", nil, &out)
	return out, err
}

func (r *ResourceClient) Available(ctx context.Context) ([]Resource, error) {
	var out []Resource
	err := r.c.do(ctx, http.MethodGet, "/resources/available", nil, &out)
	return out, err
}

func (r *ResourceClient) Update(ctx context.Context, id uint, in ResourceUpdate) (*Resource, error) {
	var res Resource
	if err := r.c.do(ctx, http.MethodPatch, fmt.Sprintf("/resources/%d", id), in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Distribute moves stock to a shelter
func (r *ResourceClient) Distribute(ctx context.Context, in NewDistribution) (*Distribution, error) {
	var d Distribution
	if err := r.c.do(ctx, http.MethodPost, "/resources/distribute", in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ResourceClient) Distributions(ctx context.Context) ([]Distribution, error) {
	var out []Distribution
	err := r.c.do(ctx, http.MethodGet, "/resources/distributions", nil, &out)
	return out, err
}

func (r *ResourceClient) UpdateDistribution(ctx context.Context, id uint, in DistributionUpdate) (*Distribution, error) {
	var d Distribution
	if err := r.c.do(ctx, http.MethodPatch, fmt.Sprintf("/resources/distributions/%d", id), in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// NotificationClient covers /notifications
type NotificationClient struct{ c *Client }

func (n *NotificationClient) Create(ctx context.Context, title, message string) (*Notification, error) {
	var out Notification
	body := map[string]string{"title": title, "message": message}
	if err := n.c.do(ctx, http.MethodPost, "/notifications", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (n *NotificationClient) Active(ctx context.Context) ([]Notification, error) {
	var out []Notification
	err := n.c.do(ctx, http.MethodGet, "/notifications/active", nil, &out)
	return out, err
}

func (n *NotificationClient) List(ctx context.Context) ([]Notification, error) {
	var out []Notification
	err := n.c.do(ctx, http.MethodGet, "/notifications", nil, &out)
	return out, err
}

func (n *NotificationClient) Get(ctx context.Context, id uint) (*Notification, error) {
	var out Notification
	if err := n.c.do(ctx, http.MethodGet, fmt.Sprintf("/notifications/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (n *NotificationClient) Update(ctx context.Context, id uint, in NotificationUpdate) (*Notification, error) {
	var out Notification
	if err := n.c.do(ctx, http.MethodPatch, fmt.Sprintf("/notifications/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deactivates a notification
func (n *NotificationClient) Delete(ctx context.Context, id uint) error {
	return n.c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil)
}
