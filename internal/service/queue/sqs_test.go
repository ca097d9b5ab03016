package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/dealer-api/internal/config"
)

type fakeSQS struct {
	sent     []*sqs.SendMessageInput
	deleted  []*sqs.DeleteMessageInput
	received *sqs.ReceiveMessageOutput
	err      error
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.sent = append(f.sent, in)
	return &sqs.SendMessageOutput{}, f.err
}

func (f *fakeSQS) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.received, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, in)
	return &sqs.DeleteMessageOutput{}, f.err
}

func newTestService(client *fakeSQS) *SQSService {
	return NewSQSService(client, &config.SQSConfig{FileCleanupQueueURL: "http://queue/cleanup"})
}

func TestSendFileCleanupMessage(t *testing.T) {
	client := &fakeSQS{}
	svc := newTestService(client)

	err := svc.SendFileCleanupMessage(context.Background(), 3, []string{"tenants/3/documents/a.pdf"})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "http://queue/cleanup", aws.ToString(client.sent[0].QueueUrl))

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.sent[0].MessageBody)), &msg))
	assert.Equal(t, MessageTypeFileCleanup, msg.Type)
	assert.Equal(t, uint(3), msg.TenantID)
	assert.Equal(t, []string{"tenants/3/documents/a.pdf"}, msg.ObjectKeys)
}

func TestSendFileCleanupMessage_NoKeysSendsNothing(t *testing.T) {
	client := &fakeSQS{}
	require.NoError(t, newTestService(client).SendFileCleanupMessage(context.Background(), 3, nil))
	assert.Empty(t, client.sent)
}

func TestSendFileCleanupMessage_Error(t *testing.T) {
	client := &fakeSQS{err: errors.New("boom")}
	err := newTestService(client).SendFileCleanupMessage(context.Background(), 3, []string{"k"})
	assert.ErrorContains(t, err, "failed to send message")
}

func TestReceiveMessages_SkipsUndecodableBodies(t *testing.T) {
	body, _ := json.Marshal(Message{Type: MessageTypeFileCleanup, TenantID: 1, ObjectKeys: []string{"k"}})
	client := &fakeSQS{received: &sqs.ReceiveMessageOutput{Messages: []types.Message{
		{Body: aws.String("not json"), ReceiptHandle: aws.String("r1")},
		{Body: aws.String(string(body)), ReceiptHandle: aws.String("r2")},
	}}}

	messages, err := newTestService(client).ReceiveMessages(context.Background(), "q", 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "r2", aws.ToString(messages[0].ReceiptHandle))
	assert.Equal(t, []string{"k"}, messages[0].Message.ObjectKeys)
}

func TestSendFileCleanupMessage_SplitsLargeKeySets(t *testing.T) {
	client := &fakeSQS{}
	keys := make([]string, maxKeysPerMessage*2+1)
	for i := range keys {
		keys[i] = fmt.Sprintf("tenants/3/documents/%d.pdf", i)
	}

	require.NoError(t, newTestService(client).SendFileCleanupMessage(context.Background(), 3, keys))

	require.Len(t, client.sent, 3)
	var last Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.sent[2].MessageBody)), &last))
	assert.Equal(t, keys[len(keys)-1:], last.ObjectKeys)
	assert.Equal(t, "3", aws.ToString(client.sent[0].MessageAttributes["tenant_id"].StringValue))
	assert.Equal(t, "FILE_CLEANUP", aws.ToString(client.sent[0].MessageAttributes["type"].StringValue))
}
