package form

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/termoapp/termo-desk/internal/model"
	"github.com/termoapp/termo-desk/internal/validation"
)

const (
	// MaxAssets caps the number of asset entries one request may carry.
	// The server enforces the same limit.
	MaxAssets = 10

	// BaseWidth is the container width with a single asset entry
	BaseWidth float32 = 460

	// WidthStep is added to the container width per additional entry
	WidthStep float32 = 240
)

// ErrMaxAssets is returned when adding an entry would exceed MaxAssets
var ErrMaxAssets = fmt.Errorf("máximo de %d patrimônios por requisição permitido", MaxAssets)

// crossFieldMessage is reported when every asset entry is blank
const crossFieldMessage = "Pelo menos um patrimônio é obrigatório"

// scalarOrder fixes the order scalar fields are validated and reported in
var scalarOrder = []string{
	model.FieldNome,
	model.FieldFuncao,
	model.FieldOutrosFuncao,
	model.FieldDepartamento,
	model.FieldTelefone,
	model.FieldEmpresa,
}

// State holds the form's values and asset entries. Each scalar field also
// carries a validation status: Pristine until first validated, reset to
// Pristine whenever its value changes. Entry ids grow monotonically and are
// never reused, so UI rows can key on them across adds and removals.
type State struct {
	mu      sync.RWMutex
	values  map[string]string
	status  map[string]model.FieldStatus
	entries []model.AssetEntry
	nextID  int64
	adding  bool
	rules   map[string]validation.Rule
}

// NewState creates a form state with one initial asset entry
func NewState() *State {
	s := &State{
		values: make(map[string]string),
		status: make(map[string]model.FieldStatus),
		rules:  validation.Rules(),
	}
	s.entries = append(s.entries, model.AssetEntry{ID: s.allocID()})
	return s
}

func (s *State) allocID() int64 {
	s.nextID++
	return s.nextID
}

// SetValue stores a scalar field value. Editing returns the field to
// Pristine: its previous validation verdict no longer applies.
func (s *State) SetValue(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	s.status[name] = model.FieldStatusPristine
}

// Value returns a scalar field value
func (s *State) Value(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name]
}

// Field returns a scalar field with its current value and validation status
func (s *State) Field(name string) model.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fieldLocked(name)
}

func (s *State) fieldLocked(name string) model.Field {
	status, tracked := s.status[name]
	if !tracked {
		status = model.FieldStatusPristine
	}
	return model.Field{Name: name, Value: s.values[name], Status: status}
}

// Entries returns a snapshot of the asset entries in display order
func (s *State) Entries() []model.AssetEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AssetEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EntryCount returns the number of asset entries
func (s *State) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// AddEntry appends a new empty asset entry and returns it. While a previous
// add is still settling the call is a no-op and returns ok=false; callers
// must invoke SettleAdd once the insertion transition finishes to re-arm.
// Exceeding MaxAssets returns ErrMaxAssets without appending.
func (s *State) AddEntry() (model.AssetEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adding {
		return model.AssetEntry{}, false, nil
	}
	if len(s.entries) >= MaxAssets {
		return model.AssetEntry{}, false, ErrMaxAssets
	}

	s.adding = true
	entry := model.AssetEntry{ID: s.allocID()}
	s.entries = append(s.entries, entry)
	return entry, true, nil
}

// SettleAdd re-arms AddEntry after the insertion transition settles
func (s *State) SettleAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adding = false
}

// RemoveEntry deletes the entry with the given id. The returned collapsed
// flag is true when exactly one entry remains afterward, telling the UI to
// fold the grouped container back into the inline layout. Removing the last
// remaining entry or an unknown id is a no-op.
func (s *State) RemoveEntry(id int64) (collapsed bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) <= 1 {
		return false, false
	}
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return len(s.entries) == 1, true
		}
	}
	return false, false
}

// SetEntryAsset updates the asset code of the entry with the given id
func (s *State) SetEntryAsset(id int64, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Asset = value
			return
		}
	}
}

// SetEntryNote updates the note of the entry with the given id
func (s *State) SetEntryNote(id int64, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Note = value
			return
		}
	}
}

// ContainerWidth returns the grouped container width for the current entry
// count: the base width plus one step per additional entry.
func (s *State) ContainerWidth() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BaseWidth + float32(len(s.entries)-1)*WidthStep
}

// ValidateField validates a single scalar field against its rule and
// records the verdict in the field's status. Unknown fields are reported
// valid.
func (s *State) ValidateField(name string) validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	rule, exists := s.rules[name]
	if !exists {
		return validation.Result{Valid: true}
	}
	result := validation.Validate(s.values[name], rule, s.lookupLocked)
	s.status[name] = statusFor(result)
	return result
}

func statusFor(result validation.Result) model.FieldStatus {
	if result.Valid {
		return model.FieldStatusValid
	}
	return model.FieldStatusInvalid
}

// ValidateEntry validates one asset entry's code and note
func (s *State) ValidateEntry(id int64) (asset, note validation.Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			asset = validation.Validate(entry.Asset, s.rules[model.FieldPatrimonio], nil)
			note = validation.Validate(entry.Note, s.rules[model.FieldObservacao], nil)
			return asset, note
		}
	}
	return validation.Result{Valid: true}, validation.Result{Valid: true}
}

func (s *State) lookupLocked(name string) string {
	return s.values[name]
}

// ValidateAll validates the whole form and returns the errors in display
// order: scalar fields first, then the cross-field asset check, then each
// entry by position. Per-entry errors use indexed field names matching the
// server's ("patrimonio_0", "observacao_1", ...).
func (s *State) ValidateAll() []model.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errors []model.FieldError

	for _, name := range scalarOrder {
		result := validation.Validate(s.values[name], s.rules[name], s.lookupLocked)
		s.status[name] = statusFor(result)
		if !result.Valid {
			errors = append(errors, model.FieldError{Field: name, Message: result.Message})
		}
	}

	anyAsset := false
	for _, entry := range s.entries {
		if !entry.IsEmpty() {
			anyAsset = true
			break
		}
	}
	if !anyAsset {
		errors = append(errors, model.FieldError{Field: model.FieldPatrimonio, Message: crossFieldMessage})
	} else {
		for i, entry := range s.entries {
			if entry.IsEmpty() {
				continue
			}
			result := validation.Validate(entry.Asset, s.rules[model.FieldPatrimonio], nil)
			if !result.Valid {
				errors = append(errors, model.FieldError{
					Field:   fmt.Sprintf("%s_%d", model.FieldPatrimonio, i),
					Message: result.Message,
				})
			}
		}
	}

	for i, entry := range s.entries {
		if strings.TrimSpace(entry.Note) == "" {
			continue
		}
		result := validation.Validate(entry.Note, s.rules[model.FieldObservacao], nil)
		if !result.Valid {
			errors = append(errors, model.FieldError{
				Field:   fmt.Sprintf("%s_%d", model.FieldObservacao, i),
				Message: result.Message,
			})
		}
	}

	return errors
}

// Payload builds the form values for submission. Asset and note lists stay
// parallel and keep display order.
func (s *State) Payload() url.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload := url.Values{}
	for _, name := range scalarOrder {
		field := s.fieldLocked(name)
		payload.Set(name, field.TrimmedValue())
	}
	for _, entry := range s.entries {
		payload.Add(model.FieldPatrimonio+"[]", strings.TrimSpace(entry.Asset))
		payload.Add(model.FieldObservacao+"[]", strings.TrimSpace(entry.Note))
	}
	return payload
}

// Reset clears all values and returns to a single empty entry. Entry ids
// keep growing so previously issued ids stay unique.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	s.status = make(map[string]model.FieldStatus)
	s.entries = []model.AssetEntry{{ID: s.allocID()}}
	s.adding = false
}
