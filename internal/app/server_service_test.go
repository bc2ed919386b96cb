package app

import (
	"context"
	"testing"
)

func TestServerService_GetOrCreateServer(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewServerService(serverRepo{store})

	server, err := svc.GetOrCreateServer(ctx, 42)
	if err != nil {
		t.Fatalf("GetOrCreateServer failed: %v", err)
	}
	if server.ID != 42 {
		t.Errorf("ID = %d, want 42", server.ID)
	}
	if server.EventChannelID != nil {
		t.Errorf("EventChannelID = %v, want nil", server.EventChannelID)
	}

	again, err := svc.GetOrCreateServer(ctx, 42)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if again.ID != 42 {
		t.Errorf("ID = %d, want 42", again.ID)
	}
	servers, _ := svc.ListServers(ctx)
	if len(servers) != 1 {
		t.Errorf("got %d servers, want 1", len(servers))
	}
}

func TestServerService_EventChannel(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addServer(42)
	svc := NewServerService(serverRepo{store})

	channel, err := svc.GetEventChannel(ctx, 42)
	if err != nil {
		t.Fatalf("GetEventChannel failed: %v", err)
	}
	if channel != nil {
		t.Errorf("channel = %v, want nil before configuration", channel)
	}

	if err := svc.SetEventChannel(ctx, 42, 123456); err != nil {
		t.Fatalf("SetEventChannel failed: %v", err)
	}

	channel, err = svc.GetEventChannel(ctx, 42)
	if err != nil {
		t.Fatalf("GetEventChannel failed: %v", err)
	}
	if channel == nil || *channel != 123456 {
		t.Errorf("channel = %v, want 123456", channel)
	}
}

func TestServerService_ListServers(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addServer(3)
	store.addServer(1)
	store.addServer(2)
	svc := NewServerService(serverRepo{store})

	servers, err := svc.ListServers(ctx)
	if err != nil {
		t.Fatalf("ListServers failed: %v", err)
	}
	if len(servers) != 3 {
		t.Fatalf("got %d servers, want 3", len(servers))
	}
	for i, want := range []int64{1, 2, 3} {
		if servers[i].ID != want {
			t.Errorf("servers[%d].ID = %d, want %d", i, servers[i].ID, want)
		}
	}
}
