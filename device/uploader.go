package device

import (
	"fmt"

	"github.com/achilleasa/accelpack/accel"
	"github.com/achilleasa/accelpack/log"
	"github.com/cogentcore/webgpu/wgpu"
)

// Uploader implements accel.Device on top of WebGPU. The packed arrays are
// uploaded as storage buffers; the actual acceleration structure build over
// them is driven by compute pipelines outside this package.
type Uploader struct {
	logger log.Logger

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	buffers map[string]deviceBuffer
}

type deviceBuffer struct {
	buf  *wgpu.Buffer
	size int
}

// Create an uploader bound to the default adapter.
func NewUploader() (*Uploader, error) {
	instance := wgpu.CreateInstance(nil)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{})
	if err != nil {
		return nil, fmt.Errorf("device: no compatible adapter: %v", err)
	}

	dev, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "accelpack upload device",
	})
	if err != nil {
		return nil, fmt.Errorf("device: could not acquire device: %v", err)
	}

	return &Uploader{
		logger:   log.New("device"),
		instance: instance,
		adapter:  adapter,
		device:   dev,
		queue:    dev.GetQueue(),
		buffers:  make(map[string]deviceBuffer),
	}, nil
}

// BuildAccel uploads the packed scene arrays. When a refit was requested and
// the buffer sizes are unchanged, data is written into the existing buffers
// in place; otherwise the buffers are reallocated.
func (u *Uploader) BuildAccel(b *accel.BVH) error {
	pack := &b.Pack
	inPlace := b.NeedsRefit()

	uploads := []struct {
		name string
		data []byte
	}{
		{"prim_type", wgpu.ToBytes(pack.PrimType)},
		{"prim_index", wgpu.ToBytes(pack.PrimIndex)},
		{"prim_object", wgpu.ToBytes(pack.PrimObject)},
		{"prim_visibility", wgpu.ToBytes(pack.PrimVisibility)},
		{"prim_tri_index", wgpu.ToBytes(pack.PrimTriIndex)},
		{"prim_tri_verts", wgpu.ToBytes(pack.PrimTriVerts)},
	}

	for _, upload := range uploads {
		if err := u.upload(upload.name, upload.data, inPlace); err != nil {
			return err
		}
	}

	b.ClearRefit()
	u.logger.Debugf("uploaded %d packed slots (refit: %t)", pack.SlotCount(), inPlace)
	return nil
}

func (u *Uploader) upload(name string, data []byte, inPlace bool) error {
	if existing, exists := u.buffers[name]; exists {
		if inPlace && existing.size == len(data) {
			if err := u.queue.WriteBuffer(existing.buf, 0, data); err != nil {
				return fmt.Errorf("device: could not refit buffer %s: %v", name, err)
			}
			return nil
		}

		existing.buf.Release()
		delete(u.buffers, name)
	}

	if len(data) == 0 {
		return nil
	}

	buf, err := u.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: data,
		Usage:    wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("device: could not allocate buffer %s of size %d: %v", name, len(data), err)
	}

	u.buffers[name] = deviceBuffer{buf: buf, size: len(data)}
	return nil
}

// Buffer returns the device buffer holding the named packed array, or nil if
// it has not been uploaded.
func (u *Uploader) Buffer(name string) *wgpu.Buffer {
	return u.buffers[name].buf
}

// Release all device resources.
func (u *Uploader) Close() {
	for name, db := range u.buffers {
		db.buf.Release()
		delete(u.buffers, name)
	}

	u.device.Release()
	u.adapter.Release()
	u.instance.Release()
}
