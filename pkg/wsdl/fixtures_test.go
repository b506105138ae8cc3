package wsdl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const quotesWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="urn:quotes"
    targetNamespace="urn:quotes" name="Quotes">
  <wsdl:types>
    <xsd:schema targetNamespace="urn:quotes">
      <xsd:simpleType name="Mode">
        <xsd:annotation><xsd:documentation>Quote mode</xsd:documentation></xsd:annotation>
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="normal-mode">
            <xsd:annotation><xsd:documentation>Default</xsd:documentation></xsd:annotation>
          </xsd:enumeration>
          <xsd:enumeration value="extended"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="Level">
        <xsd:restriction base="xsd:int">
          <xsd:enumeration value="1"/>
          <xsd:enumeration value="2"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="SubLevel">
        <xsd:restriction base="tns:Level">
          <xsd:enumeration value="1"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="Ticker">
        <xsd:restriction base="xsd:string">
          <xsd:maxLength value="5"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:element name="Quote">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="price" type="xsd:decimal"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="Side">
        <xsd:simpleType>
          <xsd:restriction base="xsd:string">
            <xsd:enumeration value="buy"/>
            <xsd:enumeration value="sell"/>
          </xsd:restriction>
        </xsd:simpleType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>
  <wsdl:message name="GetQuoteRequest">
    <wsdl:part name="a" type="xsd:string"/>
    <wsdl:part name="b" type="tns:Mode"/>
  </wsdl:message>
  <wsdl:message name="GetQuoteResponse">
    <wsdl:part name="c" element="tns:Quote"/>
  </wsdl:message>
  <wsdl:message name="Empty"/>
  <wsdl:portType name="QuotePort">
    <wsdl:operation name="GetQuote">
      <wsdl:documentation>
        Returns a quote.
      </wsdl:documentation>
      <wsdl:input message="tns:GetQuoteRequest"/>
      <wsdl:output message="tns:GetQuoteResponse"/>
    </wsdl:operation>
    <wsdl:operation name="Ping">
      <wsdl:input message="tns:Empty"/>
    </wsdl:operation>
    <wsdl:operation name="Fire">
      <wsdl:output/>
    </wsdl:operation>
  </wsdl:portType>
</wsdl:definitions>`

func mustCollection(t *testing.T, docs ...string) *Collection {
	t.Helper()
	loader := NewLoader()
	parsed := make([]Document, 0, len(docs))
	for i, d := range docs {
		doc, err := loader.LoadBytes([]byte(d), "doc"+string(rune('0'+i)))
		require.NoError(t, err)
		parsed = append(parsed, doc)
	}
	c, err := NewCollection(parsed...)
	require.NoError(t, err)
	return c
}
