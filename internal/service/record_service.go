package service

import (
	"context"
	"encoding/json"
	"time"

	"familyboard/internal/cache"
	"familyboard/internal/model"
	"familyboard/internal/tabular"
)

const (
	questionsCacheKey = "questions:list"
	questionsCacheTTL = time.Minute

	usersTable         = "User"
	questionsListLimit = 100
)

// RecordService lists rows from the tabular store.
type RecordService interface {
	IsConfigured() bool
	ListDefault(ctx context.Context) ([]model.TabularRecord, error)
	ListUsers(ctx context.Context) ([]model.TabularRecord, error)
	ListQuestions(ctx context.Context) ([]model.TabularRecord, error)
}

type recordService struct {
	tabular *tabular.Client
	cache   *cache.Client
	table   string
}

// NewRecordService creates a new record service. table is the configured
// default listing table.
func NewRecordService(client *tabular.Client, cache *cache.Client, table string) RecordService {
	return &recordService{
		tabular: client,
		cache:   cache,
		table:   table,
	}
}

// IsConfigured reports whether the tabular backend credentials are present.
func (s *recordService) IsConfigured() bool {
	return s.tabular.IsConfigured()
}

// ListDefault lists the configured table as-is.
func (s *recordService) ListDefault(ctx context.Context) ([]model.TabularRecord, error) {
	return s.tabular.ListRecords(ctx, s.table, tabular.Options{})
}

// ListUsers lists the user table.
func (s *recordService) ListUsers(ctx context.Context) ([]model.TabularRecord, error) {
	return s.tabular.ListRecords(ctx, usersTable, tabular.Options{})
}

// ListQuestions lists the questions table newest-first, with a short-lived
// cache in front of the remote store.
func (s *recordService) ListQuestions(ctx context.Context) ([]model.TabularRecord, error) {
	if data, _ := s.cache.Get(ctx, questionsCacheKey); data != nil {
		var cached []model.TabularRecord
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.tabular.ListRecords(ctx, s.table, tabular.Options{
		MaxRecords: questionsListLimit,
		Sort: []tabular.SortField{
			{Field: "created_time", Direction: "desc"},
		},
	})
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(records); err == nil {
		_ = s.cache.Set(ctx, questionsCacheKey, payload, questionsCacheTTL)
	}
	return records, nil
}
