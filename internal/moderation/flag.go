package moderation

import (
	"context"

	"github.com/pinspot/pinspot_api/internal/model"
)

// flagTarget is the flag projector shared by auto-flag evaluation and report
// resolution: it marks a target hidden with the given reason. Flags are
// one-directional here; flagging an already-flagged target overwrites the
// reason. Read paths exclude flagged content.
func (s *Service) flagTarget(ctx context.Context, ref model.TargetRef, reason string) error {
	if err := s.content.SetFlag(ctx, ref, true, &reason); err != nil {
		return err
	}
	s.publish("content.flagged", map[string]interface{}{
		"target": ref,
		"reason": reason,
	})
	return nil
}
