package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/vibetune/internal/chat"
	"github.com/abhisek/vibetune/internal/coach"
	"github.com/abhisek/vibetune/internal/logging"
	"github.com/abhisek/vibetune/internal/model"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Chat with the configured coach in plain line mode",
	Long: "Chat with the configured coach without the TUI. Nothing is saved " +
		"except LLM request events. Type /quit or press Ctrl+D to leave.",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		level := model.Level(levelFlag)
		if !level.Valid() {
			return fmt.Errorf("unknown level %q", levelFlag)
		}
		name, _ := cmd.Flags().GetString("name")

		cfg, db, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		logger, closeLog, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer closeLog()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		responder, err := newResponder(ctx, cfg, db.EventRepo(), logger)
		if err != nil {
			return err
		}
		return coachLoop(ctx, responder, level, name, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// coachLoop reads one learner message per line and prints each reply.
func coachLoop(ctx context.Context, r coach.Responder, level model.Level, name string, in io.Reader, out io.Writer) error {
	conv := model.Conversation{
		ID:        uuid.NewString(),
		Topic:     model.TopicGeneralPractice,
		StartedAt: time.Now().UTC(),
	}
	var history []model.Message

	fmt.Fprintf(out, "Coach: %s\n\n", chat.WelcomeText(name))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		text := strings.TrimSpace(sc.Text())
		switch text {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		}

		input := model.Message{
			ID:             uuid.NewString(),
			ConversationID: conv.ID,
			Sender:         model.SenderUser,
			Type:           model.MessageText,
			Content:        text,
			Version:        1,
			CreatedAt:      time.Now().UTC(),
		}
		reply, err := r.Respond(ctx, coach.Turn{
			Conversation: conv,
			Level:        level,
			History:      history,
			Input:        input,
		})
		if err != nil {
			fmt.Fprintf(out, "Coach is unavailable: %s\n\n", model.Detail(err))
			continue
		}
		history = append(history, input, *reply)
		printReply(out, reply)
	}
}

func printReply(out io.Writer, m *model.Message) {
	fmt.Fprintf(out, "Coach: %s\n", m.Content)
	if f := m.Feedback; f != nil {
		fmt.Fprintf(out, "  Rhythm %.1f  Intonation %.1f  Stress %.1f\n", f.Rhythm, f.Intonation, f.Stress)
	}
	if m.Guidance != "" {
		fmt.Fprintf(out, "  Tip: %s\n", m.Guidance)
	}
	if len(m.VocabSuggestions) > 0 {
		fmt.Fprintf(out, "  Practice: %s\n", strings.Join(m.VocabSuggestions, ", "))
	}
	fmt.Fprintln(out)
}

func init() {
	coachCmd.Flags().StringP("level", "l", string(model.LevelBeginner), "Learner level (beginner, intermediate, advanced)")
	coachCmd.Flags().String("name", "", "Name the coach greets you with")
}
