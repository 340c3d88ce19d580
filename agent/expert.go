package agent

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Session is a chat with a model. *genai.Chat implements it.
type Session interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	session     Session
}

func NewExpert(name, description string) *Expert {
	return &Expert{
		Name:        name,
		Description: description,
	}
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.session = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callbacks.
// Function calls requested by the model are answered with the expert's
// Library until the model answers with content.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.session == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.session.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		logrus.WithFields(logrus.Fields{"expert": e.Name, "function": part0.FunctionCall.Name}).Debug("function call")

		// Make the callback. No possible error, this error should be sent via 'resp'
		resp := e.Library(ctx, part0.FunctionCall)

		// Ask again the expert with the response he asked for
		// until we have a real response.
		return e.Ask(ctx, &genai.Part{FunctionResponse: resp})
	}
	return resp.Candidates[0].Content, nil
}

// Declaration returns the function declaration to ask this expert.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call perform the call of asking this expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	d := e.Declaration()
	arg0 := args[d.Parameters.Required[0]]
	question, ok := arg0.(string)
	if !ok {
		return errorResponse(id, d.Name, fmt.Errorf("invalid type got %T, expected string", arg0))
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return errorResponse(id, d.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}

	r := text(response)
	logrus.WithField("expert", e.Name).Debugf("\n        %q\n        %q", question, r)
	return outputResponse(id, d.Name, r)
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

// errorResponse reports err to the model, that will explain it to the user.
func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}
