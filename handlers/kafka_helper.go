package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
)

// BookingProducerTopic is the topic to which the booking processed kafka message is sent
const BookingProducerTopic = "booking-processed"

// BookingProducerSchemaName is the schema which will be used to send the booking processed kafka message with
const BookingProducerSchemaName = "booking-processed"

// EmailProducerTopic is the topic to which outbound email kafka messages are sent
const EmailProducerTopic = "email-send"

// EmailProducerSchemaName is the schema which will be used to send the email kafka message with
const EmailProducerSchemaName = "email-send"

// bookingProcessed represents the avro schema for the booking processed message
type bookingProcessed struct {
	BookingID      string `avro:"booking_id"`
	ConfirmationID string `avro:"confirmation_id"`
	BookingType    string `avro:"booking_type"`
}

// emailSend represents the avro schema for the outbound email message
type emailSend struct {
	EmailAddress string `avro:"email_address"`
	Subject      string `avro:"subject"`
	Body         string `avro:"body"`
}

// produceBookingMessage handles creating a producer, marshalling the booking
// details into the correct avro schema and sending the message to the topic
// defined in BookingProducerTopic
func produceBookingMessage(bookingID, confirmationID, bookingType string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}
	bookingProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, BookingProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: bookingProcessedSchema,
	}

	message, err := prepareBookingKafkaMessage(bookingID, confirmationID, bookingType, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// produceEmailMessage sends an outbound email request to the email-send topic
func produceEmailMessage(emailAddress, subject, body string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}
	emailSendSchema, err := schema.Get(cfg.SchemaRegistryURL, EmailProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: emailSendSchema,
	}

	message, err := prepareEmailKafkaMessage(emailAddress, subject, body, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareBookingKafkaMessage is pulled out of produceBookingMessage() to allow unit testing of non-kafka portion of code
func prepareBookingKafkaMessage(bookingID, confirmationID, bookingType string, bookingProcessedSchema avro.Schema) (*producer.Message, error) {
	bookingProcessedMessage := bookingProcessed{
		BookingID:      bookingID,
		ConfirmationID: confirmationID,
		BookingType:    bookingType,
	}

	messageBytes, err := bookingProcessedSchema.Marshal(bookingProcessedMessage)
	if err != nil {
		return nil, fmt.Errorf("error marshalling booking processed message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: BookingProducerTopic,
	}, nil
}

// prepareEmailKafkaMessage is pulled out of produceEmailMessage() to allow unit testing of non-kafka portion of code
func prepareEmailKafkaMessage(emailAddress, subject, body string, emailSendSchema avro.Schema) (*producer.Message, error) {
	emailSendMessage := emailSend{
		EmailAddress: emailAddress,
		Subject:      subject,
		Body:         body,
	}

	messageBytes, err := emailSendSchema.Marshal(emailSendMessage)
	if err != nil {
		return nil, fmt.Errorf("error marshalling email send message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: EmailProducerTopic,
	}, nil
}
