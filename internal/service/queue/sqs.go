package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/kingrain94/dealer-api/internal/config"
)

type MessageType string

const (
	MessageTypeFileCleanup MessageType = "FILE_CLEANUP"
)

type Message struct {
	Type       MessageType `json:"type"`
	TenantID   uint        `json:"tenant_id"`
	ObjectKeys []string    `json:"object_keys,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// sqsAPI is the subset of *sqs.Client the service calls
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client              sqsAPI
	fileCleanupQueueURL string
}

func NewSQSService(client sqsAPI, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:              client,
		fileCleanupQueueURL: config.FileCleanupQueueURL,
	}
}

func (s *SQSService) FileCleanupQueueURL() string {
	return s.fileCleanupQueueURL
}

// maxKeysPerMessage keeps a cleanup message far below the SQS body limit even for long keys
const maxKeysPerMessage = 100

// SendFileCleanupMessage asks the cleanup worker to delete stored objects no document
// references anymore. Large key sets are split over several messages.
func (s *SQSService) SendFileCleanupMessage(ctx context.Context, tenantID uint, keys []string) error {
	now := time.Now().UTC()
	for chunk := range slices.Chunk(keys, maxKeysPerMessage) {
		msg := Message{
			Type:       MessageTypeFileCleanup,
			TenantID:   tenantID,
			ObjectKeys: chunk,
			Timestamp:  now,
		}
		if err := s.send(ctx, s.fileCleanupQueueURL, msg); err != nil {
			return err
		}
	}
	return nil
}

// send puts msg on queueURL, copying type and tenant into message attributes so queue
// tooling can filter without decoding the body
func (s *SQSService) send(ctx context.Context, queueURL string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"type":      {DataType: aws.String("String"), StringValue: aws.String(string(msg.Type))},
			"tenant_id": {DataType: aws.String("Number"), StringValue: aws.String(strconv.FormatUint(uint64(msg.TenantID), 10))},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ReceiveMessages long-polls queueURL. A body that does not decode is skipped and left
// on the queue, so the redrive policy can move it aside.
func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]ReceivedMessage, 0, len(output.Messages))
	for _, raw := range output.Messages {
		var message Message
		if raw.Body == nil || json.Unmarshal([]byte(*raw.Body), &message) != nil {
			continue
		}
		messages = append(messages, ReceivedMessage{Message: message, ReceiptHandle: raw.ReceiptHandle})
	}
	return messages, nil
}

// DeleteMessage acknowledges a received message
func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
