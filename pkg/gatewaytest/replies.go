package gatewaytest

import (
	"fmt"
	"net/http"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/sirosfoundation/go-fac/pkg/message"
)

// ApprovedFormData is returned as HTMLFormData by the default Authorize3DS reply
const ApprovedFormData = `<form method="post" action="https://acs.example.com/"></form>`

func defaultReply(op message.Operation, requestBody []byte) (Reply, error) {
	var doc *etree.Document
	if op != message.HostedPageResults {
		doc = etree.NewDocument()
		if err := doc.ReadFromBytes(requestBody); err != nil {
			return Reply{}, fmt.Errorf("malformed request: %w", err)
		}
	}

	fields := replyFields(op, doc)
	resp, err := message.EncodeRoot(op.ResponseRoot(), fields)
	if err != nil {
		return Reply{}, err
	}
	body, err := message.Serialize(resp)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Status: http.StatusOK, Body: string(body)}, nil
}

func approvedCardResults() message.Object {
	return message.Obj(
		message.S("AuthCode", "123456"),
		message.S("AVSResult", ""),
		message.S("CVV2Result", "M"),
		message.S("OriginalResponseCode", "00"),
		message.S("PaddedCardNumber", "XXXXXXXXXXXX1111"),
		message.S("ReasonCode", "1"),
		message.S("ReasonCodeDescription", "Transaction is approved."),
		message.S("ReferenceNumber", uuid.NewString()),
		message.S("ResponseCode", "1"),
		message.S("TokenizedPAN", ""),
	)
}

func replyFields(op message.Operation, req *etree.Document) message.Object {
	switch op {
	case message.Authorize, message.TransactionStatus:
		return message.Obj(
			message.S("AcquirerId", requestValue(req, "AcquirerId")),
			message.E("CreditCardTransactionResults", approvedCardResults()),
			message.S("MerchantId", requestValue(req, "MerchantId")),
			message.S("OrderNumber", requestValue(req, "OrderNumber")),
		)
	case message.TransactionModification:
		return message.Obj(
			message.S("OriginalResponseCode", "00"),
			message.S("ReasonCode", "1101"),
			message.S("ReasonCodeDescription", "Transaction is approved."),
			message.S("ResponseCode", "1"),
		)
	case message.Tokenize:
		return message.Obj(
			message.S("CustomerReference", requestValue(req, "CustomerReference")),
			message.S("ErrorMsg", ""),
			message.S("Success", "true"),
			message.S("Token", "411111_000011111"),
		)
	case message.Authorize3DS:
		return message.Obj(
			message.S("HTMLFormData", ApprovedFormData),
			message.S("MerchantId", requestValue(req, "MerchantId")),
			message.S("OrderNumber", requestValue(req, "OrderNumber")),
			message.S("ResponseCode", "0"),
			message.S("ResponseCodeDescription", "Success"),
		)
	case message.HostedPagePreprocess:
		return message.Obj(
			message.S("ResponseCode", "0"),
			message.S("ResponseCodeDescription", "Success"),
			message.S("SingleUseToken", uuid.NewString()),
		)
	case message.HostedPageResults:
		return message.Obj(
			message.E("AuthResponse", message.Obj(
				message.E("CreditCardTransactionResults", approvedCardResults()),
			)),
			message.E("ThreeDSResult", message.Obj(
				message.S("AuthenticationResult", "Y"),
				message.S("CAVV", "AAABBBCCCDDD"),
				message.S("Eci", "05"),
				message.S("TransactionStain", "stain"),
			)),
		)
	}
	return nil
}
