// Command quizcli runs a MedQuest quiz in the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lshigami/MedQuest/internal/client"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/logger"
	"github.com/lshigami/MedQuest/internal/quiz"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	server := flag.StringP("server", "s", "http://localhost:3000", "MedQuest API base URL")
	email := flag.StringP("email", "e", "", "account email")
	password := flag.StringP("password", "p", "", "account password")
	register := flag.Bool("register", false, "create the account before starting")
	specialty := flag.String("specialty", "", "only draw questions from this specialty")
	limit := flag.IntP("limit", "n", 10, "number of questions")
	flag.Parse()

	logger.Init()
	logger.SetLevel("warn")

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "--email and --password are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), client.New(*server), os.Stdin, os.Stdout, options{
		email:     *email,
		password:  *password,
		register:  *register,
		specialty: *specialty,
		limit:     *limit,
	}); err != nil {
		log.Error().Err(err).Msg("quiz aborted")
		os.Exit(1)
	}
}

type options struct {
	email     string
	password  string
	register  bool
	specialty string
	limit     int
}

func run(ctx context.Context, api *client.Client, in io.Reader, out io.Writer, opts options) error {
	if opts.register {
		if _, err := api.Register(ctx, opts.email, opts.password); err != nil {
			return fmt.Errorf("register: %w", err)
		}
	} else if _, err := api.Login(ctx, opts.email, opts.password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	runner := quiz.NewRunner(api)
	questions, err := api.Questions(ctx, opts.specialty, opts.limit)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	runner.Load(questions)

	scanner := bufio.NewScanner(in)
	for runner.State() != quiz.Finished {
		q, _ := runner.Current()
		printQuestion(out, runner.Index()+1, runner.Total(), q)

		option, ok := readOption(scanner, out, len(q.Options))
		if !ok {
			break
		}
		correct, _ := runner.Select(ctx, option)
		if correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Incorrect. The answer is %c) %s\n", 'A'+rune(q.CorrectAnswer), q.Options[q.CorrectAnswer])
		}
		fmt.Fprintf(out, "%s\n\n", q.Explanation)
		runner.Next()
	}
	runner.Wait()

	fmt.Fprintf(out, "Score: %d/%d\n\n", runner.Score(), runner.Total())

	stats, err := api.Analytics(ctx)
	if err != nil {
		return fmt.Errorf("load analytics: %w", err)
	}
	printAnalytics(out, stats)
	return nil
}

func printQuestion(out io.Writer, n, total int, q dto.QuestionResponse) {
	fmt.Fprintf(out, "[%d/%d] %s · %s\n%s\n", n, total, q.Specialty, q.Format, q.Scenario)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %c) %s\n", 'A'+rune(i), opt)
	}
}

// readOption accepts a letter or a 1-based number. ok is false on EOF.
func readOption(scanner *bufio.Scanner, out io.Writer, n int) (int, bool) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return 0, false
		}
		if option, ok := parseOption(scanner.Text(), n); ok {
			return option, true
		}
		fmt.Fprintf(out, "Pick A-%c\n", 'A'+rune(n-1))
	}
}

func parseOption(input string, n int) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	if num, err := strconv.Atoi(input); err == nil {
		return num - 1, num >= 1 && num <= n
	}
	if len(input) != 1 {
		return 0, false
	}
	idx := int(strings.ToUpper(input)[0] - 'A')
	return idx, idx >= 0 && idx < n
}

func printAnalytics(out io.Writer, stats *dto.AnalyticsResponse) {
	fmt.Fprintf(out, "Overall: %d/%d correct (%d%%), %d questions in the bank\n",
		stats.CorrectAttempts, stats.TotalAttempts, stats.AccuracyPercent, stats.TotalQuestions)
	for _, s := range stats.SpecialtyStats {
		fmt.Fprintf(out, "  %-20s %3d%%  (%d/%d)\n", s.Specialty, s.AccuracyPercent, s.Correct, s.Count)
	}
}
