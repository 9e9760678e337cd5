package devops

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	value *string
	name  string
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.name = *in.Name
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: f.value}}, nil
}

func TestFetchSettings(t *testing.T) {
	fake := &fakeSSM{value: aws.String("STORE_BACKEND: sql\nDSN: \"user:pass@tcp(db:3306)/attendance?parseTime=true\"\n")}

	got, err := FetchSettings(context.Background(), fake, "/attendance/prod")
	require.NoError(t, err)
	assert.Equal(t, "/attendance/prod", fake.name)
	assert.Equal(t, "sql", got["STORE_BACKEND"])
	assert.Equal(t, "user:pass@tcp(db:3306)/attendance?parseTime=true", got["DSN"])
}

func TestFetchSettingsEmpty(t *testing.T) {
	_, err := FetchSettings(context.Background(), &fakeSSM{}, "missing")
	assert.Error(t, err)
}
