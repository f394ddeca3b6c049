package validators

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestCheckEmail(t *testing.T) {
	testCases := []struct {
		TestName string
		Email    string
		Expected bool
	}{
		{TestName: "Success. Simple address #1", Email: "a@b.com", Expected: true},
		{TestName: "Success. Subdomain #2", Email: "client.name+tag@mail.example.org", Expected: true},
		{TestName: "Success. Surrounding spaces #3", Email: "  a@b.com ", Expected: true},
		{TestName: "Error. Not an email #4", Email: "not-an-email", Expected: false},
		{TestName: "Error. Missing tld #5", Email: "a@b", Expected: false},
		{TestName: "Error. Empty #6", Email: "", Expected: false},
		{TestName: "Error. Two at signs #7", Email: "a@@b.com", Expected: false},
		{TestName: "Error. Space inside #8", Email: "a b@c.com", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := CheckEmail(tc.Email); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}

func TestCheckUpload(t *testing.T) {
	testCases := []struct {
		TestName      string
		Name          string
		ContentType   string
		Size          int64
		ExpectedError error
	}{
		{TestName: "Success. PNG #1", Name: "proof.png", ContentType: "image/png", Size: 500 << 10},
		{TestName: "Success. Upper case jpg #2", Name: "PROOF.JPG", ContentType: "image/jpeg", Size: 1024},
		{TestName: "Success. PDF #3", Name: "recibo.pdf", ContentType: "application/pdf", Size: 1024},
		{TestName: "Success. Webp with params #4", Name: "a.webp", ContentType: "image/webp; charset=binary", Size: 1},
		{TestName: "Success. Exactly at limit #5", Name: "a.gif", ContentType: "image/gif", Size: MaxUploadSize},
		{TestName: "Error. Text file #6", Name: "notes.txt", ContentType: "text/plain", Size: 10, ExpectedError: ErrUploadType},
		{TestName: "Error. Extension lies #7", Name: "script.png", ContentType: "text/html", Size: 10, ExpectedError: ErrUploadType},
		{TestName: "Error. Content-type lies #8", Name: "notes.txt", ContentType: "image/png", Size: 10, ExpectedError: ErrUploadType},
		{TestName: "Error. No extension #9", Name: "proof", ContentType: "image/png", Size: 10, ExpectedError: ErrUploadType},
		{TestName: "Error. Too large #10", Name: "big.png", ContentType: "image/png", Size: MaxUploadSize + 1, ExpectedError: ErrUploadTooLarge},
		{TestName: "Error. Empty content-type #11", Name: "a.png", ContentType: "", Size: 10, ExpectedError: ErrUploadType},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			err := CheckUpload(tc.Name, tc.ContentType, tc.Size, MaxUploadSize)
			if tc.ExpectedError == nil {
				if err != nil {
					t.Errorf("Expected no error, got: '%v'", err)
				}
				return
			}
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if !errors.Is(err, ErrUploadRejected) {
				t.Errorf("Expected error to wrap '%v', got: '%v'", ErrUploadRejected, err)
			}
		})
	}
}

func TestNewStoredName(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 123456789, time.UTC)
	pattern := regexp.MustCompile(`^\d+-\d+\.png$`)

	name := NewStoredName("../../etc/proof.png", now)
	if !pattern.MatchString(name) {
		t.Errorf("Unexpected stored name: '%s'", name)
	}
	if filepath.Base(name) != name {
		t.Errorf("Stored name must not contain path elements: '%s'", name)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		n := NewStoredName("proof.png", now)
		if _, ok := seen[n]; ok {
			t.Fatalf("Duplicate stored name for the same instant: '%s'", n)
		}
		seen[n] = struct{}{}
	}
}
