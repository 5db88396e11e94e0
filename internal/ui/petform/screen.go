package petform

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/photos"
)

type field int

const (
	fieldSearch field = iota
	fieldFilterAge
	fieldFilterDescription
	fieldName
	fieldAge
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldSearch:            "Search",
	fieldFilterAge:         "Filter by age",
	fieldFilterDescription: "Filter by description",
	fieldName:              "Pet name",
	fieldAge:               "Pet age",
	fieldDescription:       "Pet description",
}

// mensajes de los comandos asíncronos
type (
	loadedMsg struct {
		items []pets.Pet
		err   error
	}
	mutationMsg struct {
		op  pets.Op
		pet pets.Pet
		err error
	}
	photoMsg struct {
		sel photos.Selection
		err error
	}
)

type Options struct {
	Store  Store
	Picker photos.Picker // nil => sin picker
	Logger logger.Logger
}

// Model es la pantalla principal (bubbletea).
type Model struct {
	ctx    context.Context
	store  Store
	picker photos.Picker
	log    logger.Logger
	keys   keyMap

	items  []pets.Pet // listado completo, tal como lo devuelve el store
	fields [fieldCount]string
	focus  field
	cursor int // sobre visible()

	image     string
	editingID string

	// pending: hay un alta/edición/baja en vuelo; inflight es el borrador
	// enviado, para no pisar lo que se tipeó mientras tanto.
	pending  bool
	inflight Draft

	status    string
	statusErr bool
	width     int
}

func New(ctx context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return Model{
		ctx:    ctx,
		store:  opts.Store,
		picker: opts.Picker,
		log:    log.With(map[string]any{"component": "petform"}),
		keys:   newKeyMap(),
		focus:  fieldName,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.setError("Could not load pets: " + msg.err.Error())
			m.log.Error("list pets failed", map[string]any{"error": msg.err})
			return m, nil
		}
		m.items = msg.items
		m.clampCursor()
		return m, nil

	case mutationMsg:
		return m.applyMutation(msg)

	case photoMsg:
		switch {
		case msg.err != nil:
			m.setError("Photo picker failed: " + msg.err.Error())
		case msg.sel.Cancelled:
			m.setInfo("Photo selection cancelled")
		default:
			m.image = msg.sel.URI
			m.setInfo("Photo selected")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % fieldCount
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil
	case key.Matches(msg, m.keys.UpDown):
		if msg.String() == "up" && m.cursor > 0 {
			m.cursor--
		}
		if msg.String() == "down" && m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Photo):
		return m.pickPhoto()
	case key.Matches(msg, m.keys.Cancel):
		if m.editingID != "" {
			m.clearDraft()
			m.setInfo("Edit cancelled")
		}
		return m, nil
	}

	if msg.Type == tea.KeyBackspace {
		r := []rune(m.fields[m.focus])
		if len(r) > 0 {
			m.fields[m.focus] = string(r[:len(r)-1])
			m.clampCursor()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.fields[m.focus] += string(msg.Runes)
		m.clampCursor()
	case tea.KeySpace:
		m.fields[m.focus] += " "
		m.clampCursor()
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	d := m.Draft()
	if err := d.Validate(); err != nil {
		m.setError(describe(err))
		return m, nil
	}

	ctx, store := m.ctx, m.store
	op := pets.OpAdded
	if d.Editing() {
		op = pets.OpUpdated
	}
	m.pending, m.inflight = true, d
	return m, func() tea.Msg {
		p, err := Submit(ctx, store, d)
		return mutationMsg{op: op, pet: p, err: err}
	}
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	p, ok := m.Selected()
	if !ok {
		return m, nil
	}
	d := BeginEdit(p)
	m.fields[fieldName] = d.Name
	m.fields[fieldAge] = d.Age
	m.fields[fieldDescription] = d.Description
	m.image = d.Image
	m.editingID = d.EditingID
	m.focus = fieldName
	m.setInfo("Editing " + p.Name)
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	p, ok := m.Selected()
	if !ok {
		return m, nil
	}
	m.pending = true
	ctx, store := m.ctx, m.store
	return m, func() tea.Msg {
		return mutationMsg{op: pets.OpDeleted, pet: p, err: store.Delete(ctx, p.ID)}
	}
}

func (m Model) pickPhoto() (tea.Model, tea.Cmd) {
	if m.picker == nil {
		m.setError("Photo picker not configured")
		return m, nil
	}
	ctx, picker := m.ctx, m.picker
	return m, func() tea.Msg {
		sel, err := picker.PickPhoto(ctx)
		return photoMsg{sel: sel, err: err}
	}
}

func (m Model) applyMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	sent := m.inflight
	m.pending, m.inflight = false, Draft{}

	fields := map[string]any{"op": string(msg.op), "pet_id": msg.pet.ID}
	if msg.err != nil {
		fields["error"] = msg.err
		m.log.Warn("pet mutation rejected", fields)
		m.setError(describe(msg.err))
		return m, nil
	}
	m.log.Info("pet mutation applied", fields)

	switch msg.op {
	case pets.OpAdded:
		m.clearDraftIfUnchanged(sent)
		m.setInfo("Added " + msg.pet.Name)
	case pets.OpUpdated:
		m.clearDraftIfUnchanged(sent)
		m.setInfo("Updated " + msg.pet.Name)
	case pets.OpDeleted:
		if m.editingID == msg.pet.ID {
			m.clearDraft()
		}
		m.setInfo("Deleted " + msg.pet.Name)
	}
	return m, m.load()
}

func (m Model) load() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		items, err := store.List(ctx)
		return loadedMsg{items: items, err: err}
	}
}

// Draft devuelve el formulario actual.
func (m Model) Draft() Draft {
	return Draft{
		Name:        m.fields[fieldName],
		Age:         m.fields[fieldAge],
		Description: m.fields[fieldDescription],
		Image:       m.image,
		EditingID:   m.editingID,
	}
}

func (m Model) Criteria() pets.Criteria {
	return pets.Criteria{
		Search:      m.fields[fieldSearch],
		Age:         m.fields[fieldFilterAge],
		Description: m.fields[fieldFilterDescription],
	}
}

// Status devuelve la última línea de estado y si es un error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Selected devuelve la mascota bajo el cursor dentro de la vista filtrada.
func (m Model) Selected() (pets.Pet, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return pets.Pet{}, false
	}
	return vis[m.cursor], true
}

func (m Model) visible() []pets.Pet {
	return pets.Apply(m.items, m.Criteria())
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clearDraft() {
	m.fields[fieldName] = ""
	m.fields[fieldAge] = ""
	m.fields[fieldDescription] = ""
	m.image = ""
	m.editingID = ""
}

// clearDraftIfUnchanged limpia solo si el formulario sigue igual a lo enviado.
func (m *Model) clearDraftIfUnchanged(sent Draft) {
	if m.Draft() == sent {
		m.clearDraft()
	}
}

func (m *Model) setInfo(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(s string) {
	m.status, m.statusErr = s, true
}

func describe(err error) string {
	switch {
	case errors.Is(err, pets.ErrInvalidInput):
		return "Name and age are required; age must be a number greater than 0"
	case errors.Is(err, pets.ErrDuplicateName):
		return "A pet with that name already exists"
	case errors.Is(err, pets.ErrNotFound):
		return "That pet no longer exists"
	default:
		return "Error: " + err.Error()
	}
}
