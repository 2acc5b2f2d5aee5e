package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/godbus/dbus/v5"
)

const (
	busPrefix         = "org.mpris.MediaPlayer2."
	objectPath        = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	playerIface       = "org.mpris.MediaPlayer2.Player"
	propertiesIface   = "org.freedesktop.DBus.Properties"
	propertiesChanged = propertiesIface + ".PropertiesChanged"
	nameOwnerChanged  = "org.freedesktop.DBus.NameOwnerChanged"

	signalBuffer = 16
)

// Finder locates MPRIS players on the session bus.
type Finder struct {
	conn *dbus.Conn
}

// Connect opens a private connection to the session bus.
func Connect(ctx context.Context) (*Finder, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to session bus: %w", shared.ErrTransport, err)
	}
	return &Finder{conn: conn}, nil
}

// Close closes the bus connection, which ends every event stream opened through it.
func (f *Finder) Close() error {
	return f.conn.Close()
}

// Find returns the first player whose bus name contains name.
func (f *Finder) Find(ctx context.Context, name string) (Player, error) {
	var names []string
	if err := f.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return nil, fmt.Errorf("%w: failed to list bus names: %w", shared.ErrTransport, err)
	}

	busName, ok := selectBusName(names, name)
	if !ok {
		return nil, fmt.Errorf("%w: no MPRIS player matching %q", shared.ErrPlayerNotFound, name)
	}

	return &mprisPlayer{conn: f.conn, busName: busName}, nil
}

// selectBusName picks the first MPRIS bus name containing want.
func selectBusName(names []string, want string) (string, bool) {
	for _, n := range names {
		if strings.HasPrefix(n, busPrefix) && strings.Contains(n, want) {
			return n, true
		}
	}
	return "", false
}

type mprisPlayer struct {
	conn    *dbus.Conn
	busName string
}

func (p *mprisPlayer) Name() string {
	return p.busName
}

func (p *mprisPlayer) Metadata(ctx context.Context) (Metadata, error) {
	var v dbus.Variant
	obj := p.conn.Object(p.busName, objectPath)
	if err := obj.CallWithContext(ctx, propertiesIface+".Get", 0, playerIface, "Metadata").Store(&v); err != nil {
		return Metadata{}, fmt.Errorf("%w: failed to read metadata: %w", shared.ErrTransport, err)
	}

	fields, _ := v.Value().(map[string]dbus.Variant)
	return parseMetadata(fields), nil
}

func (p *mprisPlayer) Events(ctx context.Context) (<-chan Event, error) {
	var owner string
	if err := p.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.GetNameOwner", 0, p.busName).Store(&owner); err != nil {
		return nil, fmt.Errorf("%w: failed to resolve owner of %s: %w", shared.ErrTransport, p.busName, err)
	}

	if err := p.conn.AddMatchSignalContext(ctx,
		dbus.WithMatchSender(p.busName),
		dbus.WithMatchObjectPath(objectPath),
		dbus.WithMatchInterface(propertiesIface),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		return nil, fmt.Errorf("%w: failed to subscribe: %w", shared.ErrTransport, err)
	}

	if err := p.conn.AddMatchSignalContext(ctx,
		dbus.WithMatchInterface("org.freedesktop.DBus"),
		dbus.WithMatchMember("NameOwnerChanged"),
		dbus.WithMatchOption("arg0", p.busName),
	); err != nil {
		return nil, fmt.Errorf("%w: failed to watch owner: %w", shared.ErrTransport, err)
	}

	current, err := p.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	signals := make(chan *dbus.Signal, signalBuffer)
	p.conn.Signal(signals)

	out := make(chan Event)
	go func() {
		defer close(out)
		defer p.conn.RemoveSignal(signals)

		s := stream{busName: p.busName, owner: owner, current: current}
		for {
			var ev Event
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-signals:
				if !ok {
					ev = Event{Kind: EventTransportError, Err: fmt.Errorf("%w: bus connection closed", shared.ErrTransport)}
					break
				}
				var keep bool
				if ev, keep = s.classify(sig); !keep {
					continue
				}
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
			if ev.Kind == EventTransportError {
				return
			}
		}
	}()

	return out, nil
}

// stream turns raw signals from one player into events.
type stream struct {
	busName string
	owner   string
	current Metadata
}

// classify maps sig to an event. It reports false for signals that do not concern the player.
func (s *stream) classify(sig *dbus.Signal) (Event, bool) {
	switch sig.Name {
	case nameOwnerChanged:
		if len(sig.Body) != 3 {
			return Event{}, false
		}
		name, _ := sig.Body[0].(string)
		newOwner, _ := sig.Body[2].(string)
		if name != s.busName || newOwner != "" {
			return Event{}, false
		}
		return Event{Kind: EventTransportError, Err: fmt.Errorf("%w: %s exited", shared.ErrTransport, s.busName)}, true

	case propertiesChanged:
		if sig.Path != objectPath || (s.owner != "" && sig.Sender != s.owner) || len(sig.Body) < 2 {
			return Event{}, false
		}
		iface, _ := sig.Body[0].(string)
		changed, _ := sig.Body[1].(map[string]dbus.Variant)
		if iface != playerIface {
			return Event{}, false
		}

		v, ok := changed["Metadata"]
		if !ok {
			return Event{Kind: EventOther}, true
		}
		fields, _ := v.Value().(map[string]dbus.Variant)
		md := parseMetadata(fields)
		if md.SameTrack(s.current) {
			return Event{Kind: EventOther}, true
		}
		s.current = md
		return Event{Kind: EventTrackChanged, Metadata: md}, true
	}
	return Event{}, false
}

// parseMetadata reads the xesam/mpris fields the display uses.
func parseMetadata(fields map[string]dbus.Variant) Metadata {
	var md Metadata

	if v, ok := fields["mpris:trackid"]; ok {
		switch id := v.Value().(type) {
		case dbus.ObjectPath:
			md.TrackID = string(id)
		case string:
			md.TrackID = id
		}
	}

	if v, ok := fields["xesam:artist"]; ok {
		switch a := v.Value().(type) {
		case []string:
			md.Artists = a
		case string:
			md.Artists = []string{a}
		}
	}

	if v, ok := fields["xesam:title"]; ok {
		md.Title, _ = v.Value().(string)
	}
	return md
}
