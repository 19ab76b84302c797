package customize

import (
	"errors"
	"fmt"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
)

type Step int

const (
	StepProductType Step = iota + 1
	StepColorSize
	StepDesignGlaze
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepProductType:
		return "product type"
	case StepColorSize:
		return "color and size"
	case StepDesignGlaze:
		return "design and glaze"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrStepIncomplete      = errors.New("current step is incomplete")
	ErrNotAtReview         = errors.New("selection can only be submitted from the review step")
	ErrIncompleteSelection = errors.New("product type, color and size are required")
	ErrQuantityOutOfRange  = fmt.Errorf("quantity must be between %d and %d", domain.MinQuantity, domain.MaxQuantity)
	ErrUnknownOption       = errors.New("unknown option")
)

// ItemAdder receives the finished line item, usually a *cart.Store.
type ItemAdder interface {
	AddItem(item domain.LineItem)
}

// Wizard walks a selection through the customizer steps in order.
// It is not safe for concurrent use.
type Wizard struct {
	pricer    *Pricer
	cart      ItemAdder
	step      Step
	selection domain.Selection
}

func NewWizard(pricer *Pricer, cart ItemAdder) *Wizard {
	return &Wizard{
		pricer:    pricer,
		cart:      cart,
		step:      StepProductType,
		selection: domain.NewSelection(),
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Selection() domain.Selection {
	return w.selection
}

// Price is the live batch price of the current selection.
func (w *Wizard) Price() domain.Money {
	return w.pricer.CalculatePrice(w.selection)
}

func (w *Wizard) SetProductType(id string) error {
	if _, ok := w.pricer.catalog.ProductType(id); !ok {
		return fmt.Errorf("product type[%s]: %w", id, ErrUnknownOption)
	}
	w.selection.ProductType = id
	return nil
}

func (w *Wizard) SetColor(id string) error {
	if _, ok := w.pricer.catalog.Color(id); !ok {
		return fmt.Errorf("color[%s]: %w", id, ErrUnknownOption)
	}
	w.selection.Color = id
	return nil
}

func (w *Wizard) SetSize(id string) error {
	if _, ok := w.pricer.catalog.Size(id); !ok {
		return fmt.Errorf("size[%s]: %w", id, ErrUnknownOption)
	}
	w.selection.Size = id
	return nil
}

func (w *Wizard) SetDesign(id string) error {
	if _, ok := w.pricer.catalog.Design(id); !ok {
		return fmt.Errorf("design[%s]: %w", id, ErrUnknownOption)
	}
	w.selection.Design = id
	return nil
}

func (w *Wizard) SetGlaze(id string) error {
	if _, ok := w.pricer.catalog.Glaze(id); !ok {
		return fmt.Errorf("glaze[%s]: %w", id, ErrUnknownOption)
	}
	w.selection.Glaze = id
	return nil
}

func (w *Wizard) SetQuantity(quantity int) error {
	if quantity < domain.MinQuantity || quantity > domain.MaxQuantity {
		return ErrQuantityOutOfRange
	}
	w.selection.Quantity = quantity
	return nil
}

func (w *Wizard) SetNote(note string) {
	w.selection.Note = note
}

// Next advances one step once the current step is complete.
func (w *Wizard) Next() error {
	if w.step == StepReview {
		return nil
	}

	if !w.stepComplete() {
		return fmt.Errorf("%s: %w", w.step, ErrStepIncomplete)
	}

	w.step++
	return nil
}

// Back is always allowed and stops at the first step.
func (w *Wizard) Back() {
	if w.step > StepProductType {
		w.step--
	}
}

// Submit adds the selection to the cart and returns the added item.
func (w *Wizard) Submit() (domain.LineItem, error) {
	if w.step != StepReview {
		return domain.LineItem{}, ErrNotAtReview
	}

	sel := w.selection
	if sel.ProductType == "" || sel.Color == "" || sel.Size == "" {
		return domain.LineItem{}, ErrIncompleteSelection
	}

	item := w.pricer.BuildLineItem(sel)
	w.cart.AddItem(item)

	return item, nil
}

func (w *Wizard) stepComplete() bool {
	sel := w.selection

	switch w.step {
	case StepProductType:
		return sel.ProductType != ""
	case StepColorSize:
		return sel.Color != "" && sel.Size != ""
	case StepDesignGlaze:
		return sel.Design != "" && sel.Glaze != ""
	default:
		return true
	}
}
