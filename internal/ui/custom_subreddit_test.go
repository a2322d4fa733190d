package ui

import (
	"errors"
	"testing"
)

func TestValidateSubreddit(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr string
	}{
		{input: "golang", want: "golang"},
		{input: "Ask_Reddit-2", want: "Ask_Reddit-2"},
		{input: "", wantErr: "Subreddit name cannot be empty."},
		{input: "   ", wantErr: "Subreddit name cannot be empty."},
		{input: " golang ", wantErr: "Subreddit contains invalid characters."},
		{input: "golang\t", wantErr: "Subreddit contains invalid characters."},
		{input: "foo bar", wantErr: "Subreddit contains invalid characters."},
		{input: "r/golang", wantErr: "Subreddit contains invalid characters."},
	}
	for _, tc := range cases {
		got, err := ValidateSubreddit(tc.input)
		if tc.wantErr == "" {
			if err != nil || got != tc.want {
				t.Fatalf("ValidateSubreddit(%q) = %q, %v; want %q", tc.input, got, err, tc.want)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ValidateSubreddit(%q): expected ValidationError, got %v", tc.input, err)
		}
		if err.Error() != tc.wantErr {
			t.Fatalf("ValidateSubreddit(%q): expected %q, got %q", tc.input, tc.wantErr, err.Error())
		}
	}
}

func TestSubredditURLTrimsBase(t *testing.T) {
	if got := SubredditURL("http://127.0.0.1:8080/", "golang"); got != "http://127.0.0.1:8080/r/golang/.json" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := SubredditURL("", "news"); got != DefaultRedditBase+"/r/news/.json" {
		t.Fatalf("unexpected default url %q", got)
	}
}
