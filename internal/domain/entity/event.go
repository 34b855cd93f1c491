package entity

// Switches holds named game switches toggled by interaction scripts
type Switches map[string]bool

// On reports whether the named switch is on. A nil map reads as all off.
func (s Switches) On(name string) bool {
	return s[name]
}

// Page is one configuration page of an event
type Page struct {
	Trigger TriggerKind
	Note    string // may carry <range:...> and <noicon>
	Script  string // Lua function run when the interaction starts
	Switch  string // page is selectable only while this switch is on ("" = always)
}

// Descriptor is the parsed interaction configuration of an event's active page
type Descriptor struct {
	Window       RangeWindow
	Facing       FacingSet
	Trigger      TriggerKind
	SuppressIcon bool
}

const noPage = -1

// Event is a static interactable placed on a stage
type Event struct {
	ID    int
	Name  string
	X, Y  int // anchor tile
	Note  string
	Pages []Page

	page int

	// memoized descriptor for cachedPage
	desc       Descriptor
	descOK     bool
	cachedPage int
	cacheValid bool

	busy     bool
	starting bool
}

// NewEvent creates an event and selects its initial page with all switches off
func NewEvent(id int, name string, x, y int, note string, pages []Page) *Event {
	e := &Event{
		ID:    id,
		Name:  name,
		X:     x,
		Y:     y,
		Note:  note,
		Pages: pages,
		page:  noPage,
	}
	e.Refresh(nil)
	return e
}

// Refresh re-selects the active page: the highest-index page whose switch
// condition holds. Returns true if the active page changed.
func (e *Event) Refresh(switches Switches) bool {
	next := noPage
	for i := len(e.Pages) - 1; i >= 0; i-- {
		p := e.Pages[i]
		if p.Switch == "" || switches.On(p.Switch) {
			next = i
			break
		}
	}
	if next == e.page {
		return false
	}
	e.page = next
	e.cacheValid = false
	return true
}

// ActivePage returns the active page, or nil when none qualifies
func (e *Event) ActivePage() *Page {
	if e.page == noPage {
		return nil
	}
	return &e.Pages[e.page]
}

// Descriptor returns the interaction descriptor of the active page.
// ok is false when the event does not participate: no active page, no
// valid range tag, or an all-zero window.
func (e *Event) Descriptor() (Descriptor, bool) {
	if e.cacheValid && e.cachedPage == e.page {
		return e.desc, e.descOK
	}
	e.desc, e.descOK = e.parseDescriptor()
	e.cachedPage = e.page
	e.cacheValid = true
	return e.desc, e.descOK
}

func (e *Event) parseDescriptor() (Descriptor, bool) {
	page := e.ActivePage()
	if page == nil {
		return Descriptor{}, false
	}

	// A page-level tag, even a malformed one, shadows the event note.
	var spec RangeSpec
	var ok bool
	if HasRangeTag(page.Note) {
		spec, ok = ParseRangeTag(page.Note)
	} else {
		spec, ok = ParseRangeTag(e.Note)
	}
	if !ok || spec.Window.IsZero() {
		return Descriptor{}, false
	}

	return Descriptor{
		Window:       spec.Window,
		Facing:       spec.Facing,
		Trigger:      page.Trigger,
		SuppressIcon: HasNoIconTag(page.Note),
	}, true
}

// Busy reports whether the event's own interaction is running
func (e *Event) Busy() bool { return e.busy }

// SetBusy marks the event's interaction as running or finished
func (e *Event) SetBusy(busy bool) { e.busy = busy }

// Starting reports whether the event was picked to start this tick
func (e *Event) Starting() bool { return e.starting }

// SetStarting marks the event as triggering
func (e *Event) SetStarting(starting bool) { e.starting = starting }

// ClearRuntime drops busy and starting flags (map unload)
func (e *Event) ClearRuntime() {
	e.busy = false
	e.starting = false
}
