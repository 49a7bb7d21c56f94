package verification

import "context"

// Service issues and checks verification codes for one channel.
type Service struct {
	store  *CodeStore
	sender Sender
	ch     Channel
}

func NewService(store *CodeStore, sender Sender, ch Channel) *Service {
	return &Service{store: store, sender: sender, ch: ch}
}

// SendCode generates a fresh code, stores it with TTL and hands it to
// the sender. Re-sending overwrites any previous code for the
// recipient.
func (s *Service) SendCode(ctx context.Context, recipient string) error {
	code, err := NewCode()
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.ch, recipient, code); err != nil {
		return err
	}
	return s.sender.Send(ctx, recipient, code)
}

// VerifyCode consumes the stored code and compares. A wrong code still
// consumes: the client has to request a new one.
func (s *Service) VerifyCode(ctx context.Context, recipient, code string) (bool, error) {
	stored, err := s.store.Consume(ctx, s.ch, recipient)
	if err == ErrCodeNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == code, nil
}
