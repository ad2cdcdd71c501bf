package xrecord

import (
	"fmt"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/record"
	"github.com/jezek/xgb/xproto"

	"github.com/dshills/hookstorm/internal/hook"
	"github.com/dshills/hookstorm/internal/logging"
)

// Client-side protocol version we speak. The extension negotiates down if
// the server is older.
const (
	clientMajor = 1
	clientMinor = 13
)

// EnableContextReply categories, as defined by the RECORD protocol.
const (
	categoryFromServer  = 0
	categoryFromClient  = 1
	categoryClientStart = 2
	categoryClientDied  = 3
	categoryStartOfData = 4
	categoryEndOfData   = 5
)

// Backend drives the X RECORD extension. It satisfies hook.Backend.
// Methods are not safe for concurrent use; the hook serializes them.
type Backend struct {
	ctrl    *xgb.Conn
	data    *xgb.Conn
	context record.Context
	keymap  *keymap
	log     *logging.Logger
}

// New returns an unopened backend. A nil logger disables backend logging.
func New(log *logging.Logger) *Backend {
	if log == nil {
		log = logging.Nop()
	}
	return &Backend{log: log.WithComponent("xrecord")}
}

// Open establishes the control and data connections to the display. An
// empty display name falls back to $DISPLAY.
func (b *Backend) Open(display string) error {
	ctrl, err := xgb.NewConnDisplay(display)
	if err != nil {
		return fmt.Errorf("control connection: %v", err)
	}
	data, err := xgb.NewConnDisplay(display)
	if err != nil {
		ctrl.Close()
		return fmt.Errorf("data connection: %v", err)
	}
	km, err := loadKeymap(ctrl)
	if err != nil {
		data.Close()
		ctrl.Close()
		return fmt.Errorf("keyboard mapping: %v", err)
	}
	b.ctrl = ctrl
	b.data = data
	b.keymap = km
	b.log.Debug("connected to display %q", display)
	return nil
}

// QueryVersion initializes the RECORD extension on both connections and
// negotiates the protocol version with the server.
func (b *Backend) QueryVersion() (major, minor uint16, err error) {
	if err := record.Init(b.ctrl); err != nil {
		return 0, 0, err
	}
	if err := record.Init(b.data); err != nil {
		return 0, 0, err
	}
	reply, err := record.QueryVersion(b.ctrl, clientMajor, clientMinor).Reply()
	if err != nil {
		return 0, 0, err
	}
	b.log.Debug("record extension version %d.%d", reply.MajorVersion, reply.MinorVersion)
	return reply.MajorVersion, reply.MinorVersion, nil
}

// AllocRange reserves the device-event range to intercept. The protocol
// range covering keyboard and pointer events never varies, so this cannot
// fail; the step exists to keep the setup sequence explicit.
func (b *Backend) AllocRange() (*hook.EventRange, error) {
	return &hook.EventRange{First: hook.RawKeyPress, Last: hook.RawMotion}, nil
}

// CreateContext registers an interception context covering all clients of
// the display for the given device-event range.
func (b *Backend) CreateContext(r *hook.EventRange) error {
	ctx, err := record.NewContextId(b.data)
	if err != nil {
		return err
	}
	ranges := []record.Range{{
		DeviceEvents: record.Range8{
			First: protoCode(r.First),
			Last:  protoCode(r.Last),
		},
	}}
	clients := []record.ClientSpec{record.ClientSpec(record.CsAllClients)}
	err = record.CreateContextChecked(b.data, ctx, record.ElementHeader(0),
		uint32(len(clients)), uint32(len(ranges)), clients, ranges).Check()
	if err != nil {
		return err
	}
	b.context = ctx
	return nil
}

// Enable turns the context on and blocks in the reply stream, invoking fn
// for the start-of-data marker, every intercepted event, and the
// end-of-data marker that follows Disable. It returns once the stream
// ends.
func (b *Backend) Enable(fn hook.CaptureFunc) error {
	cookie := record.EnableContext(b.data, b.context)
	for {
		reply, err := cookie.Reply()
		if err != nil {
			return err
		}
		switch reply.Category {
		case categoryStartOfData:
			fn(hook.Capture{Category: hook.CaptureStartOfData})
		case categoryEndOfData:
			fn(hook.Capture{Category: hook.CaptureEndOfData})
			return nil
		case categoryFromServer, categoryFromClient:
			now := time.Now().UnixMilli()
			for _, raw := range decodeEvents(reply.Data, b.keymap, now) {
				fn(hook.Capture{Category: hook.CaptureEvent, Raw: raw})
			}
		}
	}
}

// Disable turns the context off over the control connection. The Sync
// flushes the request so the data connection's end-of-data reply is
// guaranteed to be on the wire before Disable returns.
func (b *Backend) Disable() error {
	if err := record.DisableContextChecked(b.ctrl, b.context).Check(); err != nil {
		return err
	}
	b.ctrl.Sync()
	return nil
}

// FreeContext releases the server-side context.
func (b *Backend) FreeContext() error {
	return record.FreeContextChecked(b.ctrl, b.context).Check()
}

// Close tears down both connections.
func (b *Backend) Close() error {
	if b.data != nil {
		b.data.Close()
		b.data = nil
	}
	if b.ctrl != nil {
		b.ctrl.Close()
		b.ctrl = nil
	}
	b.keymap = nil
	return nil
}

// protoCode maps a backend event kind to its core protocol opcode.
func protoCode(k hook.RawKind) byte {
	switch k {
	case hook.RawKeyPress:
		return xproto.KeyPress
	case hook.RawKeyRelease:
		return xproto.KeyRelease
	case hook.RawButtonPress:
		return xproto.ButtonPress
	case hook.RawButtonRelease:
		return xproto.ButtonRelease
	default:
		return xproto.MotionNotify
	}
}
