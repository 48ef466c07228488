package questionnaire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/insight"
	"github.com/abmoura/vida/internal/models"
	"github.com/abmoura/vida/internal/validation"
)

type QuestionnaireCmd struct {
	Wake      string `help:"Usual wake time (HH:MM)." default:""`
	Sleep     string `help:"Usual bedtime (HH:MM)." default:""`
	WorkStart string `help:"Work start time (HH:MM)." default:""`
	WorkEnd   string `help:"Work end time (HH:MM)." default:""`
	Exercise  string `help:"Preferred exercise time (morning|afternoon|evening|none)." default:""`
	Goals     string `help:"Comma-separated goal tags (saude,financas,produtividade,aprendizado)." default:""`
}

func (c *QuestionnaireCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	profile := models.UserProfile{
		WakeTime:           c.Wake,
		SleepTime:          c.Sleep,
		WorkStart:          c.WorkStart,
		WorkEnd:            c.WorkEnd,
		ExercisePreference: models.ExercisePreference(c.Exercise),
	}
	if c.Goals != "" {
		for _, tag := range strings.Split(c.Goals, ",") {
			profile.GoalTags = append(profile.GoalTags, strings.TrimSpace(tag))
		}
	}

	// No flags at all means interactive mode.
	if c.noFlags() {
		if err := runForm(&profile); err != nil {
			return err
		}
	}

	if err := validation.ValidateProfile(profile); err != nil {
		return err
	}

	suggestions, err := session.Engine.CompleteQuestionnaire(profile)
	if err != nil {
		if errors.Is(err, insight.ErrQuestionnaireCompleted) {
			return errors.New("questionnaire already completed; answers cannot be changed")
		}
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Println("Questionnaire completed.")
	if len(suggestions) == 0 {
		fmt.Println("No suggestions yet; they will surface as vida learns your routine.")
		return nil
	}
	fmt.Printf("\n%d suggestion(s) based on your answers:\n", len(suggestions))
	for _, s := range suggestions {
		fmt.Printf("  %s %s (%d%%) — %s\n", s.Icon, s.Name, s.Confidence, s.Reason)
	}
	fmt.Println("\nReview them with: vida suggest list")
	return nil
}

func (c *QuestionnaireCmd) noFlags() bool {
	return c.Wake == "" && c.Sleep == "" && c.WorkStart == "" && c.WorkEnd == "" &&
		c.Exercise == "" && c.Goals == ""
}

func runForm(profile *models.UserProfile) error {
	exercise := string(models.ExerciseNone)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("When do you usually wake up?").
				Description("HH:MM, leave empty to skip").
				Value(&profile.WakeTime),
			huh.NewInput().
				Title("When do you usually go to bed?").
				Description("HH:MM, leave empty to skip").
				Value(&profile.SleepTime),
			huh.NewInput().
				Title("When does your work day start?").
				Description("HH:MM, leave empty to skip").
				Value(&profile.WorkStart),
			huh.NewInput().
				Title("When does your work day end?").
				Description("HH:MM, leave empty to skip").
				Value(&profile.WorkEnd),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("When do you prefer to exercise?").
				Options(
					huh.NewOption("Morning", string(models.ExerciseMorning)),
					huh.NewOption("Afternoon", string(models.ExerciseAfternoon)),
					huh.NewOption("Evening", string(models.ExerciseEvening)),
					huh.NewOption("I don't exercise", string(models.ExerciseNone)),
				).
				Value(&exercise),
			huh.NewMultiSelect[string]().
				Title("What are your goals right now?").
				Options(
					huh.NewOption("Health", constants.GoalTagHealth),
					huh.NewOption("Finances", constants.GoalTagFinance),
					huh.NewOption("Productivity", constants.GoalTagProductivity),
					huh.NewOption("Learning", constants.GoalTagLearning),
				).
				Value(&profile.GoalTags),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("questionnaire form error: %w", err)
	}

	profile.ExercisePreference = models.ExercisePreference(exercise)
	return nil
}
