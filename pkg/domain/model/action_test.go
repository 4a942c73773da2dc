package model_test

import (
	"errors"
	"testing"

	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Action
		wantErr bool
	}{
		{name: "download", input: "download", want: model.ActionDownload},
		{name: "upload", input: "upload", want: model.ActionUpload},
		{name: "case sensitive", input: "Download", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bogus", input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseAction(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, model.ErrInvalidAction))
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
			gt.Value(t, got.String()).Equal(tt.input)
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	gt.NoError(t, model.Credentials{ClientID: "id", ClientSecret: "secret"}.Validate())
	gt.Error(t, model.Credentials{ClientSecret: "secret"}.Validate())
	gt.Error(t, model.Credentials{ClientID: "id"}.Validate())
}

func TestToken_Bearer(t *testing.T) {
	gt.Value(t, model.Token("abc").Bearer()).Equal("Bearer abc")
}
