package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/ZaguanLabs/isoglot"
)

func TestRedisStore_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := NewRedisStoreFromClient(client, 3600, "")

	g := seedGlossary(t)
	data, err := json.Marshal(Snapshot(g))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	mock.ExpectSet("isoglot:session-1", data, time.Hour).SetVal("OK")

	if err := s.Save(context.Background(), "session-1", g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_Load(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := NewRedisStoreFromClient(client, 0, "custom:")

	rows := []Row{
		{Key: "kitab", Translation: "libro", Category: isoglot.CategoryCore, Status: isoglot.StatusAssigned},
		{Key: "ilm", Category: isoglot.CategoryCore, Status: isoglot.StatusPending},
	}
	data, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	mock.ExpectGet("custom:session-1").SetVal(string(data))

	g := isoglot.NewGlossary()
	result, err := s.Load(context.Background(), "session-1", g)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Registered != 2 || result.Resolved != 1 {
		t.Errorf("Unexpected load result: %+v", result)
	}
	if entry, _ := g.Lookup("kitab"); entry.Translation != "libro" {
		t.Errorf("Load should resolve 'kitab', got %+v", entry)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_LoadMissingSession(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := NewRedisStoreFromClient(client, 0, "")

	mock.ExpectGet("isoglot:absent").RedisNil()

	g := isoglot.NewGlossary()
	result, err := s.Load(context.Background(), "absent", g)
	if err != nil {
		t.Fatalf("Missing session must not error: %v", err)
	}
	if result.Registered != 0 {
		t.Errorf("Missing session should load nothing, got %+v", result)
	}
	if g.Len() != 0 {
		t.Errorf("Glossary should stay empty, got %d entries", g.Len())
	}
}

func TestRedisStore_LoadCorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := NewRedisStoreFromClient(client, 0, "")

	mock.ExpectGet("isoglot:bad").SetVal("{not json")

	g := isoglot.NewGlossary()
	if _, err := s.Load(context.Background(), "bad", g); err == nil {
		t.Error("Corrupt payload should fail")
	}
}

func TestNewRedisStoreFromClient_Defaults(t *testing.T) {
	client, _ := redismock.NewClientMock()

	s := NewRedisStoreFromClient(client, 0, "")
	if s.keyPrefix != "isoglot:" {
		t.Errorf("Expected default prefix 'isoglot:', got %q", s.keyPrefix)
	}
	if s.ttl != 0 {
		t.Errorf("Zero TTL should mean no expiration, got %v", s.ttl)
	}

	s = NewRedisStoreFromClient(client, 60, "x:")
	if s.ttl != time.Minute {
		t.Errorf("Expected 60s TTL, got %v", s.ttl)
	}
}
