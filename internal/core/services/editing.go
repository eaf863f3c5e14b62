package services

import (
	"errors"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// edit parses text, applies fn to a copy of its properties and writes
// the result back. When fn reports no change the input text is returned.
func (s *Switchboard) edit(text string, fn func(p *domain.Properties) (bool, error)) (string, domain.Properties, error) {
	doc, err := s.ParseDocument(text)
	if err != nil {
		return "", domain.Properties{}, err
	}

	p := doc.Properties.Clone()
	changed, err := fn(&p)
	if err != nil {
		return "", domain.Properties{}, toDomainError(err)
	}
	if !changed {
		return text, p, nil
	}

	out, err := s.writer.Serialize(text, p)
	if err != nil {
		return "", domain.Properties{}, serializeError(err)
	}
	return out, p, nil
}

func checkIndex(p *domain.Properties, index int) error {
	if index < 0 || index >= len(p.Stubs) {
		return indexError(index, len(p.Stubs))
	}
	return nil
}

// ListStubs returns the stubs matching filter, in document order.
func (s *Switchboard) ListStubs(text string, filter domain.StubFilter) ([]domain.IndexedStub, error) {
	doc, err := s.ParseDocument(text)
	if err != nil {
		return nil, err
	}
	out := []domain.IndexedStub{}
	for i, stub := range doc.Properties.Stubs {
		if filter.Matches(stub) {
			out = append(out, domain.IndexedStub{Index: i, Stub: stub})
		}
	}
	return out, nil
}

// AddStub appends the canonical form of spec. The new index equals the
// previous stub count.
func (s *Switchboard) AddStub(text string, spec domain.StubSpec) (*domain.AddStubResult, error) {
	var index int
	out, _, err := s.edit(text, func(p *domain.Properties) (bool, error) {
		index = len(p.Stubs)
		p.Stubs = append(p.Stubs, spec.Canonicalize())
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.AddStubResult{Text: out, Index: index}, nil
}

// ResolveStub removes the stub at index. Later stubs shift down by one.
func (s *Switchboard) ResolveStub(text string, index int) (*domain.ResolveStubResult, error) {
	var removed domain.Stub
	out, _, err := s.edit(text, func(p *domain.Properties) (bool, error) {
		if err := checkIndex(p, index); err != nil {
			return false, err
		}
		removed = p.Stubs[index].Clone()
		p.Stubs = append(p.Stubs[:index], p.Stubs[index+1:]...)
		if len(p.Stubs) == 0 {
			p.Stubs = nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.ResolveStubResult{Text: out, Removed: removed}, nil
}

// UpdateStub applies the set fields of update to the stub at index.
func (s *Switchboard) UpdateStub(text string, index int, update domain.StubUpdate) (*domain.StubEditResult, error) {
	update, err := normaliseUpdate(update)
	if err != nil {
		return nil, err
	}
	out, p, err := s.edit(text, func(p *domain.Properties) (bool, error) {
		if err := checkIndex(p, index); err != nil {
			return false, err
		}
		if update.IsEmpty() {
			return false, nil
		}
		update.Apply(&p.Stubs[index])
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.StubEditResult{Text: out, Index: index, Stub: p.Stubs[index]}, nil
}

// LinkStubAnchor ties an inline anchor to the stub at index.
// The anchor is stored as ^id; linking an anchor already present changes nothing.
func (s *Switchboard) LinkStubAnchor(text string, index int, anchorID string) (*domain.StubEditResult, error) {
	id, err := anchorIDFor(anchorID)
	if err != nil {
		return nil, err
	}
	out, p, err := s.edit(text, func(p *domain.Properties) (bool, error) {
		if err := checkIndex(p, index); err != nil {
			return false, err
		}
		stub := &p.Stubs[index]
		if stub.HasInlineAnchor(id) {
			return false, nil
		}
		stub.InlineAnchors = append(stub.InlineAnchors, "^"+id)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.StubEditResult{Text: out, Index: index, Stub: p.Stubs[index]}, nil
}

// UnlinkStubAnchor removes an inline anchor from the stub at index.
// Removing an anchor that is not linked changes nothing.
func (s *Switchboard) UnlinkStubAnchor(text string, index int, anchorID string) (*domain.StubEditResult, error) {
	id, err := anchorIDFor(anchorID)
	if err != nil {
		return nil, err
	}
	out, p, err := s.edit(text, func(p *domain.Properties) (bool, error) {
		if err := checkIndex(p, index); err != nil {
			return false, err
		}
		stub := &p.Stubs[index]
		var kept []string
		for _, a := range stub.InlineAnchors {
			if domain.NormaliseAnchorID(a) != id {
				kept = append(kept, a)
			}
		}
		if len(kept) == len(stub.InlineAnchors) {
			return false, nil
		}
		stub.InlineAnchors = kept
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.StubEditResult{Text: out, Index: index, Stub: p.Stubs[index]}, nil
}

// InitDocument stamps uid, title, created and modified. A document
// without a header gets one; existing values other than modified are kept.
func (s *Switchboard) InitDocument(text string, opts domain.InitOptions) (*domain.InitResult, error) {
	now := opts.Now
	if now.IsZero() {
		now = s.now()
	}

	p := domain.NewProperties()
	created := false
	doc, err := s.parser.Parse(text, domain.ParseOptions{})
	switch {
	case err == nil:
		p = doc.Properties.Clone()
	case errors.Is(err, domain.ErrNoFrontmatter):
		created = true
	default:
		return nil, toDomainError(err)
	}

	if p.UID == "" {
		p.UID = opts.UID
	}
	if p.Title == "" {
		p.Title = opts.Title
	}
	if p.Created == nil {
		c := now
		p.Created = &c
	}
	m := now
	p.Modified = &m

	out, err := s.writer.Serialize(text, p)
	if err != nil {
		return nil, serializeError(err)
	}
	return &domain.InitResult{Text: out, Properties: p, Created: created}, nil
}

func anchorIDFor(anchorID string) (string, error) {
	id := domain.NormaliseAnchorID(anchorID)
	if id == "" {
		e := domain.NewError(domain.KindValidation, domain.ErrMissingField, "anchor id is empty")
		e.Field = "anchor_id"
		return "", e
	}
	if anchorRe.FindString("^"+id) != "^"+id {
		e := domain.NewError(domain.KindValidation, domain.ErrTypeMismatch,
			"anchor id %q may only contain letters, digits, '-' and '_'", anchorID)
		e.Field = "anchor_id"
		e.Expected = "anchor id"
		e.Actual = "string"
		return "", e
	}
	return id, nil
}

func normaliseUpdate(u domain.StubUpdate) (domain.StubUpdate, error) {
	if u.Priority != nil {
		p, err := domain.ParsePriority(string(*u.Priority))
		if err != nil {
			return u, err
		}
		u.Priority = &p
	}
	if u.Form != nil {
		f, err := domain.ParseStubForm(string(*u.Form))
		if err != nil {
			return u, err
		}
		u.Form = &f
	}
	return u, nil
}
