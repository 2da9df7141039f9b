package accel

import (
	"errors"
	"strings"
	"testing"
)

func TestCopyToDeviceFailure(t *testing.T) {
	mesh := makeTestMesh("mesh", 1)
	bvh := makeBLAS(mesh)

	dev := &mockDevice{err: errors.New("out of device memory")}
	progress := NewProgress()

	bvh.CopyToDevice(progress, dev)

	err := progress.Err()
	if err == nil {
		t.Fatal("expected device build failure to surface through the progress reporter")
	}
	if !strings.Contains(err.Error(), "out of device memory") {
		t.Fatalf("expected error status to include the device failure; got %q", err.Error())
	}

	// The pack must remain valid so the caller can retry.
	if got := bvh.Pack.SlotCount(); got != 1 {
		t.Fatalf("expected pack to remain valid after a failed build; got %d slots", got)
	}

	// A retry against a working device succeeds without a new error.
	dev.err = nil
	retryProgress := NewProgress()
	bvh.CopyToDevice(retryProgress, dev)
	if retryProgress.Err() != nil {
		t.Fatalf("expected retry to succeed; got %v", retryProgress.Err())
	}
	if dev.builds != 2 {
		t.Fatalf("expected 2 device build attempts; got %d", dev.builds)
	}
}

func TestProgressKeepsFirstError(t *testing.T) {
	progress := NewProgress()
	progress.SetError("first")
	progress.SetError("second")

	if got := progress.Err().Error(); got != "first" {
		t.Fatalf("expected first reported error to win; got %q", got)
	}

	progress.SetStatus("Updating scene BVH", "Packing BVH instances")
	status, substatus := progress.Status()
	if status != "Updating scene BVH" || substatus != "Packing BVH instances" {
		t.Fatalf("unexpected status %q / %q", status, substatus)
	}
}

func TestRefitFlag(t *testing.T) {
	bvh := NewBVH(Params{TopLevel: true}, nil, nil)

	if bvh.NeedsRefit() {
		t.Fatal("expected a fresh BVH to not request a refit")
	}

	bvh.Refit()
	if !bvh.NeedsRefit() {
		t.Fatal("expected Refit to mark the BVH for in-place refit")
	}

	bvh.ClearRefit()
	if bvh.NeedsRefit() {
		t.Fatal("expected ClearRefit to reset the refit request")
	}
}

type mockDevice struct {
	err    error
	builds int
}

func (d *mockDevice) BuildAccel(b *BVH) error {
	d.builds++
	if d.err != nil {
		return d.err
	}
	b.ClearRefit()
	return nil
}

var _ Device = &mockDevice{}
