// File: services/intelligence/interface.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
)

// historyLimit caps how many turns a session keeps; older turns roll off.
const historyLimit = 10

// AssistantService answers customer questions about services, pricing, and
// booking, grounded on the live service catalog.
type AssistantService interface {
	ProcessUserInput(ctx context.Context, req models.AIRequest) (*models.AIResponse, error)
}

type GeminiAssistant struct {
	gemini   *GeminiClient
	ctxStore *RedisContextStore
	bookSvc  booking.BookingService
}

func NewGeminiAssistant(gemini *GeminiClient, ctxStore *RedisContextStore, bookSvc booking.BookingService) *GeminiAssistant {
	return &GeminiAssistant{
		gemini:   gemini,
		ctxStore: ctxStore,
		bookSvc:  bookSvc,
	}
}

func (s *GeminiAssistant) ProcessUserInput(ctx context.Context, req models.AIRequest) (*models.AIResponse, error) {
	aiCtx, err := s.ctxStore.Get(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	if svcType := detectServiceType(req.Text); svcType != "" {
		aiCtx.ServiceType = svcType
	}

	prompt := s.buildPrompt(aiCtx, req.Text)
	reply, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	aiCtx.History = append(aiCtx.History, "Customer: "+req.Text, "Assistant: "+reply)
	if len(aiCtx.History) > historyLimit {
		aiCtx.History = aiCtx.History[len(aiCtx.History)-historyLimit:]
	}
	if err := s.ctxStore.Set(ctx, req.SessionID, aiCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.AIResponse{
		ResponseText: reply,
		ServiceType:  aiCtx.ServiceType,
	}, nil
}

func (s *GeminiAssistant) buildPrompt(aiCtx *models.AIContext, text string) string {
	var sb strings.Builder
	sb.WriteString("You are the booking assistant for a mobile notary business. ")
	sb.WriteString("Answer briefly and accurately using only the catalog below. ")
	sb.WriteString("Travel fees apply beyond each service's included radius. ")
	sb.WriteString("Appointments outside posted hours carry a $30 surcharge and weekends a $40 surcharge.\n\nServices:\n")
	for _, def := range s.bookSvc.ListServices() {
		fmt.Fprintf(&sb, "- %s (%s): $%.2f, %d minutes", def.Name, def.Type, def.BasePrice, def.DurationMinutes)
		if def.IncludedDocuments > 0 {
			fmt.Fprintf(&sb, ", %d documents included then $%.2f each", def.IncludedDocuments, def.ExtraDocumentFee)
		}
		if def.RequiresAddress {
			fmt.Fprintf(&sb, ", travel included within %.0f miles", def.IncludedRadiusMiles)
		} else {
			sb.WriteString(", fully remote")
		}
		sb.WriteString("\n")
	}
	if len(aiCtx.History) > 0 {
		sb.WriteString("\nConversation so far:\n")
		sb.WriteString(strings.Join(aiCtx.History, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString("\nCustomer: " + text + "\nAssistant:")
	return sb.String()
}

// detectServiceType scans a user turn for a catalog service mention so later
// turns can stay anchored to it.
func detectServiceType(text string) models.ServiceType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "loan signing"), strings.Contains(lower, "closing"):
		return models.ServiceLoanSigning
	case strings.Contains(lower, "remote"), strings.Contains(lower, "online"), strings.Contains(lower, "ron"):
		return models.ServiceRON
	case strings.Contains(lower, "extended"), strings.Contains(lower, "after hours"), strings.Contains(lower, "evening"):
		return models.ServiceExtendedHours
	case strings.Contains(lower, "quick"):
		return models.ServiceQuickStampLocal
	case strings.Contains(lower, "growth"):
		return models.ServiceBusinessGrowth
	case strings.Contains(lower, "business"):
		return models.ServiceBusinessEssentials
	case strings.Contains(lower, "notar"):
		return models.ServiceStandardNotary
	}
	return ""
}
