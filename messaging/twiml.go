package messaging

import "encoding/xml"

const ContentTypeXML = "text/xml"

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message *string  `xml:"Message"`
}

// TwiML renders a messaging response carrying reply. An empty reply still
// renders an empty Message element so the gateway acknowledges the webhook.
func TwiML(reply string) ([]byte, error) {
	body, err := xml.Marshal(twimlResponse{Message: &reply})
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
