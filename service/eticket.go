package service

import (
	"bytes"
	"fmt"

	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/transformers"

	"github.com/jung-kurt/gofpdf"
)

// ETicketService renders confirmed bookings as PDF e-tickets
type ETicketService struct{}

// GenerateETicket renders the booking as a PDF document. Flight bookings get
// an e-ticket with the passenger manifest; hotel bookings get a confirmation
// voucher.
func (service *ETicketService) GenerateETicket(booking *models.BookingResourceDB, agentName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	if booking.BookingType == BookingTypeHotel {
		pdf.Cell(0, 12, "Hotel Booking Voucher")
	} else {
		pdf.Cell(0, 12, "Flight E-Ticket")
	}
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Confirmation ID", booking.ConfirmationID)
	writeRow(pdf, "Status", booking.Status)
	writeRow(pdf, "Booked By", agentName)
	writeRow(pdf, "Booking Date", booking.BookingDate.Format("02 Jan 2006 15:04"))
	writeRow(pdf, "Total Amount", fmt.Sprintf("%s %s", booking.Currency, transformers.FormatAmount(booking.TotalAmount)))
	pdf.Ln(6)

	if booking.FlightDetails != nil {
		flight := booking.FlightDetails.Flight

		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 10, "Flight Details")
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		writeRow(pdf, "Airline", flight.Airline)
		writeRow(pdf, "Flight Number", flight.FlightNumber)
		writeRow(pdf, "Route", fmt.Sprintf("%s - %s", flight.Origin, flight.Destination))
		writeRow(pdf, "Departure", flight.Departure)
		writeRow(pdf, "Arrival", flight.Arrival)
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 10, "Passengers")
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		for i, passenger := range booking.FlightDetails.Passengers {
			name := fmt.Sprintf("%s %s %s", passenger.Title, passenger.FirstName, passenger.LastName)
			writeRow(pdf, fmt.Sprintf("Passenger %d", i+1), name)
		}
	}

	if booking.HotelDetails != nil {
		hotel := booking.HotelDetails

		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 10, "Hotel Details")
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		writeRow(pdf, "Hotel", hotel.Hotel.Name)
		writeRow(pdf, "City", hotel.Hotel.City)
		writeRow(pdf, "Room", hotel.Room.RoomType)
		writeRow(pdf, "Check-In", hotel.Stay.CheckIn)
		writeRow(pdf, "Check-Out", hotel.Stay.CheckOut)
		writeRow(pdf, "Nights", fmt.Sprintf("%d", hotel.Stay.Nights))
		writeRow(pdf, "Guests", fmt.Sprintf("%d", hotel.Stay.Guests))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering e-ticket pdf: [%v]", err)
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
