package order

import "superstar/internal/cart"

type State int

const (
	Idle State = iota
	Ready
)

// Composer is the submission state machine: Idle until a generate
// succeeds, Ready while the composed message is current, back to Idle
// the moment the details are edited. A Ready message is discarded on
// edit so a stale name/address pairing can never be submitted.
// Not safe for concurrent use; callers serialize access.
type Composer struct {
	cfg   Config
	state State
	msg   Message
}

func NewComposer(cfg Config) *Composer { return &Composer{cfg: cfg} }

func (c *Composer) State() State { return c.state }

// Current returns the composed message while it is still current.
func (c *Composer) Current() (Message, bool) {
	if c.state != Ready {
		return Message{}, false
	}
	return c.msg, true
}

// Invalidate discards any composed message. Called on every details
// edit.
func (c *Composer) Invalidate() {
	c.state = Idle
	c.msg = Message{}
}

// Generate validates and, if the cart has lines and the details pass,
// composes the message and moves to Ready. On any failure the composer
// stays Idle with no partial message: ErrEmptyCart before validation,
// FieldErrors with every violated field otherwise.
func (c *Composer) Generate(ct *cart.Cart, d CustomerDetails) (Message, error) {
	c.Invalidate()

	if ct.Empty() {
		return Message{}, ErrEmptyCart
	}
	if errs := ValidateDetails(d); len(errs) > 0 {
		return Message{}, errs
	}

	text := ComposeText(c.cfg, ct.Lines(), ct.TotalAmount(), d)
	c.msg = Message{Text: text, DeepLink: DeepLink(c.cfg.Recipient, text)}
	c.state = Ready
	return c.msg, nil
}
