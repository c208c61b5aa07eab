package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/app/services/console/board"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"strconv"
	"strings"
)

const helpText = `board                       show this week's grid
reload                      fetch students, instructors and appointments again
open <day 1-5> <HH:MM>      open a slot: booking form or appointment detail
search <text>               search students for the booking
student <#|id>              pick the booking student
instructor <#|id>           pick the booking instructor
book                        book the selected slot
edit                        edit the open appointment
date <YYYY-MM-DD>           set the edited date
time <HH:MM>                set the edited time
status <status>             set the edited status
save                        save the edit
delete                      delete the open appointment
close                       close the form
students [text]             list students
instructors                 list instructors
analyze <#|id> <file> [pt|en]  analyze a posture image
plan <#|id> [pt|en]         generate a workout plan
lang <pt|en>                set the language
theme <light|dark>          set the theme
prefs                       show preferences
health                      check the studio API
quit                        leave`

func (c *Console) help(ctx context.Context, args []string) error {
	fmt.Fprintln(c.out, helpText)
	return nil
}

func (c *Console) showBoard(ctx context.Context, args []string) error {
	c.renderGrid()
	return nil
}

func (c *Console) reload(ctx context.Context, args []string) error {
	c.board.Reload(ctx)
	c.renderGrid()
	return nil
}

func (c *Console) open(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("open <day 1-5> <HH:MM>")
	}
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("open <day 1-5> <HH:MM>")
	}
	err = c.board.SelectCell(day-1, args[1])
	if err != nil {
		return c.toastValidation(err)
	}
	c.renderState()
	return nil
}

func (c *Console) search(ctx context.Context, args []string) error {
	candidates, err := c.board.SearchStudents(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.renderStudents(candidates)
	return nil
}

func (c *Console) selectStudent(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("student <#|id>")
	}
	studentID := args[0]
	if index, ok := listIndex(args[0], len(c.board.Candidates())); ok {
		studentID = c.board.Candidates()[index].ID
	}
	err := c.board.SelectStudent(studentID)
	if err != nil {
		return c.toastValidation(err)
	}
	c.renderState()
	return nil
}

func (c *Console) selectInstructor(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("instructor <#|id>")
	}
	instructorID := args[0]
	instructors := c.board.Instructors()
	if index, ok := listIndex(args[0], len(instructors)); ok {
		instructorID = instructors[index].ID
	}
	err := c.board.SelectInstructor(instructorID)
	if err != nil {
		return c.toastValidation(err)
	}
	c.renderState()
	return nil
}

// toastValidation shows a slot or selection check that failed. The board
// only toasts its own form submissions.
func (c *Console) toastValidation(err error) error {
	var validationErr *board.ValidationError
	if errors.As(err, &validationErr) {
		c.notifier.Error(validationErr.Message)
	}
	return err
}

func (c *Console) book(ctx context.Context, args []string) error {
	err := c.board.ConfirmBooking(ctx)
	if err != nil {
		return err
	}
	c.renderGrid()
	return nil
}

func (c *Console) edit(ctx context.Context, args []string) error {
	err := c.board.StartEditing()
	if err != nil {
		return err
	}
	c.renderState()
	return nil
}

func (c *Console) setDate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("date <YYYY-MM-DD>")
	}
	return c.afterEdit(c.board.SetEditDate(args[0]))
}

func (c *Console) setTime(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("time <HH:MM>")
	}
	return c.afterEdit(c.board.SetEditTime(args[0]))
}

func (c *Console) setStatus(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("status <status>")
	}
	return c.afterEdit(c.board.SetEditStatus(strings.ToLower(args[0])))
}

func (c *Console) afterEdit(err error) error {
	if err != nil {
		return err
	}
	c.renderState()
	return nil
}

func (c *Console) save(ctx context.Context, args []string) error {
	err := c.board.SaveEdit(ctx)
	if err != nil {
		return err
	}
	c.renderState()
	return nil
}

func (c *Console) remove(ctx context.Context, args []string) error {
	err := c.board.Delete(ctx)
	if err != nil {
		return err
	}
	c.renderGrid()
	return nil
}

func (c *Console) close(ctx context.Context, args []string) error {
	c.board.Close()
	c.renderGrid()
	return nil
}

func (c *Console) listStudents(ctx context.Context, args []string) error {
	ctx, cancel := c.remoteContext(ctx)
	defer cancel()
	students, err := c.client.ListStudents(ctx, strings.Join(args, " "))
	if err != nil {
		c.remoteFailure(err, constvars.ToastStudentsFailed)
		return nil
	}
	c.listed = students
	c.renderStudents(students)
	return nil
}

func (c *Console) listInstructors(ctx context.Context, args []string) error {
	ctx, cancel := c.remoteContext(ctx)
	defer cancel()
	instructors, err := c.client.ListInstructors(ctx)
	if err != nil {
		c.remoteFailure(err, constvars.ToastInstructorsFailed)
		return nil
	}
	c.renderInstructors(instructors)
	return nil
}

func (c *Console) analyze(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usage("analyze <#|id> <file> [pt|en]")
	}
	studentID := c.resolveStudent(args[0])
	language := c.preferences.Language
	if len(args) == 3 {
		language = strings.ToLower(args[2])
	}

	image, err := os.ReadFile(args[1])
	if err != nil {
		c.Log.WithError(err).WithField(constvars.LoggingFileKey, args[1]).Error("console.analyze error reading image")
		c.notifier.Error(constvars.ToastImageUnreadable)
		return nil
	}

	ctx, cancel := c.remoteContext(ctx)
	defer cancel()
	result, err := c.client.AnalyzePosture(ctx, studentID, language, filepath.Base(args[1]), image)
	if err != nil {
		c.remoteFailure(err, constvars.ToastAnalysisFailed)
		return nil
	}
	c.renderAnalysis(result)
	c.notifier.Success(constvars.ToastAnalysisSucceeded)
	return nil
}

func (c *Console) plan(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("plan <#|id> [pt|en]")
	}
	studentID := c.resolveStudent(args[0])
	language := c.preferences.Language
	if len(args) == 2 {
		language = strings.ToLower(args[1])
	}

	ctx, cancel := c.remoteContext(ctx)
	defer cancel()
	plan, err := c.client.GenerateWorkoutPlan(ctx, studentID, language)
	if err != nil {
		c.remoteFailure(err, constvars.ToastPlanFailed)
		return nil
	}
	c.renderPlan(plan)
	c.notifier.Success(constvars.ToastPlanSucceeded)
	return nil
}

func (c *Console) setLanguage(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("lang <pt|en>")
	}
	language := strings.ToLower(args[0])
	if language != constvars.LanguageEnglish && language != constvars.LanguagePortuguese {
		c.notifier.Error(constvars.ToastPreferencesInvalid)
		return nil
	}
	preferences := c.preferences
	preferences.Language = language
	return c.storePreferences(preferences)
}

func (c *Console) setTheme(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("theme <light|dark>")
	}
	theme := strings.ToLower(args[0])
	if theme != constvars.ThemeLight && theme != constvars.ThemeDark {
		c.notifier.Error(constvars.ToastPreferencesInvalid)
		return nil
	}
	preferences := c.preferences
	preferences.Theme = theme
	return c.storePreferences(preferences)
}

// storePreferences applies preferences for this session even when saving
// them fails.
func (c *Console) storePreferences(preferences config.Preferences) error {
	c.preferences = preferences
	c.notifier.Theme = preferences.Theme

	err := c.savePreferences(preferences)
	if err != nil {
		c.Log.WithError(err).Error("console.storePreferences error saving preferences")
		c.notifier.Error(constvars.ToastPreferencesFailed)
		return nil
	}
	c.notifier.Success(constvars.ToastPreferencesSaved)
	return nil
}

func (c *Console) showPreferences(ctx context.Context, args []string) error {
	w := c.table()
	fmt.Fprintf(w, "Language\t%s\n", c.preferences.Language)
	fmt.Fprintf(w, "Theme\t%s\n", c.preferences.Theme)
	w.Flush()
	return nil
}

func (c *Console) health(ctx context.Context, args []string) error {
	ctx, cancel := c.remoteContext(ctx)
	defer cancel()
	status, err := c.client.Health(ctx)
	if err != nil || status.Status != constvars.HealthStatusOK {
		c.Log.WithError(err).Warn("console.health studio API unavailable")
		c.notifier.Error(constvars.ToastStudioUnavailable)
		return nil
	}
	c.notifier.Success(constvars.ToastStudioAvailable)
	return nil
}

func (c *Console) remoteFailure(err error, fallback string) {
	message := exceptions.DisplayMessage(err, fallback)
	c.Log.WithError(err).Error(message)
	c.notifier.Error(message)
}

// resolveStudent maps a 1-based position in the last student listing, or the
// board's students before any listing, to its id. Anything else is taken as
// an id.
func (c *Console) resolveStudent(arg string) string {
	students := c.listed
	if students == nil {
		students = c.board.Students()
	}
	if index, ok := listIndex(arg, len(students)); ok {
		return students[index].ID
	}
	return arg
}

// listIndex parses a 1-based position, optionally written as #n.
func listIndex(arg string, length int) (int, bool) {
	position, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || position < 1 || position > length {
		return 0, false
	}
	return position - 1, true
}
