package validation

import "sort"

// Built-in schema names.
const (
	SchemaStorySubmission  = "story-submission"
	SchemaCourseEnrollment = "course-enrollment"
	SchemaUserSignUp       = "user-sign-up"
	SchemaUserLogin        = "user-login"
	SchemaContactForm      = "contact-form"
)

// StorySubmission validates a community story.
func StorySubmission() Schema {
	return Schema{
		Field("title", Required("Story title"), MinLength(5, "Story title"), MaxLength(100, "Story title")),
		Field("content", Required("Story content"), MinLength(50, "Story content"), MaxLength(5000, "Story content")),
		Field("author", Required("Author name"), MinLength(2, "Author name")),
		Field("email", Email()),
	}
}

// CourseEnrollment validates a course sign-up.
func CourseEnrollment() Schema {
	return Schema{
		Field("email", Email()),
		Field("fullName", Required("Full name"), MinLength(2, "Full name")),
		Field("learningGoal", Required("Learning goal")),
	}
}

// UserSignUp validates account creation. confirmPassword is only required
// here; it is not compared against password.
func UserSignUp() Schema {
	return Schema{
		Field("email", Email()),
		Field("username", Username()),
		Field("password", Password()),
		Field("confirmPassword", Required("Password confirmation")),
	}
}

// UserLogin validates a login form.
func UserLogin() Schema {
	return Schema{
		Field("email", Email()),
		Field("password", Required("Password")),
	}
}

// ContactForm validates a contact message.
func ContactForm() Schema {
	return Schema{
		Field("name", Required("Name"), MinLength(2, "Name")),
		Field("email", Email()),
		Field("subject", Required("Subject"), MinLength(5, "Subject")),
		Field("message", Required("Message"), MinLength(10, "Message")),
	}
}

var builtin = map[string]func() Schema{
	SchemaStorySubmission:  StorySubmission,
	SchemaCourseEnrollment: CourseEnrollment,
	SchemaUserSignUp:       UserSignUp,
	SchemaUserLogin:        UserLogin,
	SchemaContactForm:      ContactForm,
}

// Lookup returns the built-in schema registered under name.
func Lookup(name string) (Schema, bool) {
	build, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names lists the built-in schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
