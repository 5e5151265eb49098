package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GroqService implementa NLPService.
var _ ports.NLPService = (*GroqService)(nil)

const groqChatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqService adaptador que implementa NLPService usando la API REST de Groq
// (compatible con el protocolo chat/completions de OpenAI).
// Usa net/http de la librería estándar de Go; no requiere SDK.
type GroqService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGroqService construye el adaptador. model suele ser "llama-3.3-70b-versatile".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewGroqService(apiKey, model string) *GroqService {
	return &GroqService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el caller impone además su propio context.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo chat/completions ──────────────────────

type groqRequest struct {
	Model          string            `json:"model"`
	Messages       []groqMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat *groqRespFormat   `json:"response_format,omitempty"`
}

type groqMessage struct {
	Role    string `json:"role"` // system | user
	Content string `json:"content"`
}

type groqRespFormat struct {
	Type string `json:"type"` // "json_object" → JSON puro garantizado
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// AnalyzeQuery clasifica el mensaje en intención + entidades vía Groq.
// Temperatura 0 y response_format json_object: la clasificación debe ser
// determinista y siempre JSON.
func (s *GroqService) AnalyzeQuery(ctx context.Context, message string) (*dto.NLPAnalysis, error) {
	raw, err := s.complete(ctx, groqRequest{
		Model: s.model,
		Messages: []groqMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature:    0,
		MaxTokens:      512,
		ResponseFormat: &groqRespFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(raw)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo (respuesta: %s)", raw)
	}

	var analysis dto.NLPAnalysis
	if err := json.Unmarshal([]byte(cleanJSON), &analysis); err != nil {
		return nil, fmt.Errorf("AI: parsear análisis NLP: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return &analysis, nil
}

// GenerateAnswer respuesta libre para preguntas teóricas.
func (s *GroqService) GenerateAnswer(ctx context.Context, message string) (string, error) {
	return s.complete(ctx, groqRequest{
		Model: s.model,
		Messages: []groqMessage{
			{Role: "system", Content: answerSystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   512,
	})
}

// complete ejecuta una llamada chat/completions y devuelve el texto del primer choice.
func (s *GroqService) complete(ctx context.Context, payload groqRequest) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GROQ_API_KEY no configurado")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqChatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp groqResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Groq error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Groq HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(rawBody, &groqResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Groq: %w", err)
	}
	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("AI: Groq devolvió respuesta vacía")
	}
	return groqResp.Choices[0].Message.Content, nil
}
