// Package classroom exposes read and join operations over classroom
// resources. Every operation returns a Result instead of an error: the
// UI layer branches on Result.Err and never has to recover from a panic
// or unwind through error returns.
package classroom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anuvat/anuvat/internal/api"
)

const classroomPath = "/classrooms"

// ErrNoClassroomID is returned when a join succeeds but the server
// response carries no classroom id to persist.
var ErrNoClassroomID = errors.New("join succeeded but the response carried no classroom id")

// Classroom is an immutable snapshot of a course section.
type Classroom struct {
	ID           json.Number `json:"id"`
	Name         string      `json:"name"`
	TeacherName  string      `json:"teacherName"`
	ClassCode    string      `json:"classCode"`
	StudentCount int         `json:"studentCount"`
}

// Material is a study resource published to a classroom.
type Material struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
	Type  string      `json:"type"`
	URL   string      `json:"url"`
}

// AssignmentType filters the assignment listing.
type AssignmentType string

const (
	TypePractice   AssignmentType = "practice"
	TypeSubmission AssignmentType = "submission"
)

// Assignment is a graded or practice task in a classroom.
type Assignment struct {
	ID      json.Number `json:"id"`
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	DueDate string      `json:"dueDate"`
	Points  int         `json:"points"`
}

// Result is the uniform `{data, error}` shape every operation returns.
// Exactly one of Data and Err is meaningful.
type Result[T any] struct {
	Data T
	Err  error
}

func success[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// ClassroomIDStore persists the id of the joined classroom.
type ClassroomIDStore interface {
	SaveClassroomID(id string) error
}

// Service wraps the API client for classroom operations. Every call is
// a fresh round-trip: no retries, no caching.
type Service struct {
	api   *api.Client
	creds ClassroomIDStore
}

// NewService creates a classroom Service.
func NewService(client *api.Client, creds ClassroomIDStore) *Service {
	return &Service{api: client, creds: creds}
}

// Details fetches a classroom snapshot.
func (s *Service) Details(ctx context.Context, classID string) Result[*Classroom] {
	raw, err := s.api.Get(ctx, fmt.Sprintf("%s/%s/details", classroomPath, classID), api.WithSchema(api.ClassroomDetailsSchema))
	if err != nil {
		return failure[*Classroom](err)
	}

	var payload struct {
		Data Classroom `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failure[*Classroom](fmt.Errorf("decode classroom details: %w", err))
	}
	return success(&payload.Data)
}

// Join redeems a class code. On success the returned classroom id is
// persisted as the selected classroom and handed back as Data. A
// response without a classroom id is an error and persists nothing.
func (s *Service) Join(ctx context.Context, code string) Result[string] {
	raw, err := s.api.Post(ctx, classroomPath+"/join", map[string]string{"code": code}, api.WithSchema(api.JoinResponseSchema))
	if err != nil {
		return failure[string](err)
	}

	var payload struct {
		Data struct {
			ClassroomID json.Number `json:"classroomId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failure[string](fmt.Errorf("decode join response: %w", err))
	}

	id := payload.Data.ClassroomID.String()
	if id == "" {
		return failure[string](ErrNoClassroomID)
	}

	if err := s.creds.SaveClassroomID(id); err != nil {
		return failure[string](fmt.Errorf("persist classroom id: %w", err))
	}
	return success(id)
}

// Materials fetches the classroom's study materials.
func (s *Service) Materials(ctx context.Context, classID string) Result[[]Material] {
	raw, err := s.api.Get(ctx, fmt.Sprintf("%s/%s/materials", classroomPath, classID), api.WithSchema(api.MaterialsSchema))
	if err != nil {
		return failure[[]Material](err)
	}

	var payload struct {
		Data []Material `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failure[[]Material](fmt.Errorf("decode materials: %w", err))
	}
	return success(payload.Data)
}

// Assignments fetches assignments filtered by type.
func (s *Service) Assignments(ctx context.Context, classID string, typ AssignmentType) Result[[]Assignment] {
	path := fmt.Sprintf("%s/%s/assignments?type=%s", classroomPath, classID, typ)
	raw, err := s.api.Get(ctx, path, api.WithSchema(api.AssignmentsSchema))
	if err != nil {
		return failure[[]Assignment](err)
	}

	var payload struct {
		Data []Assignment `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failure[[]Assignment](fmt.Errorf("decode assignments: %w", err))
	}
	return success(payload.Data)
}

// PracticeAssignments lists the ungraded practice assignments.
func (s *Service) PracticeAssignments(ctx context.Context, classID string) Result[[]Assignment] {
	return s.Assignments(ctx, classID, TypePractice)
}

// SubmissionAssignments lists the graded submission assignments.
func (s *Service) SubmissionAssignments(ctx context.Context, classID string) Result[[]Assignment] {
	return s.Assignments(ctx, classID, TypeSubmission)
}
