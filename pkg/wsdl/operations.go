package wsdl

import (
	"fmt"

	"github.com/pyneda/soapgen/pkg/descriptor"
	"github.com/pyneda/soapgen/pkg/xmltree"
)

// BuildOperations returns one descriptor per wsdl:operation of portType, in
// document order. A missing input or output yields an empty sequence.
func (r *Resolver) BuildOperations(portType *xmltree.Node) ([]descriptor.OperationDescriptor, error) {
	nodes := portType.ChildrenNamed(WSDLNamespace, "operation")
	ops := make([]descriptor.OperationDescriptor, 0, len(nodes))

	for _, node := range nodes {
		name := node.AttrValue("name")

		params, err := r.ioParams(node.FirstChild(WSDLNamespace, "input"))
		if err != nil {
			return nil, fmt.Errorf("operation %s input: %w", name, err)
		}
		returns, err := r.ioParams(node.FirstChild(WSDLNamespace, "output"))
		if err != nil {
			return nil, fmt.Errorf("operation %s output: %w", name, err)
		}

		ops = append(ops, descriptor.OperationDescriptor{
			Name:    name,
			Doc:     Documentation(node),
			Params:  params,
			Returns: returns,
		})
	}

	return ops, nil
}

func (r *Resolver) ioParams(node *xmltree.Node) ([]descriptor.ParamDescriptor, error) {
	params := []descriptor.ParamDescriptor{}
	if node == nil {
		return params, nil
	}
	messageRef, ok := node.Attr("message")
	if !ok {
		return params, nil
	}

	parts, err := r.ResolveMessageParts(messageRef, node.Scope())
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		params = append(params, p.Param())
	}
	return params, nil
}

// BuildInterface builds the interface descriptor of one portType
func (r *Resolver) BuildInterface(portType *xmltree.Node) (descriptor.InterfaceDescriptor, error) {
	name := portType.AttrValue("name")
	ops, err := r.BuildOperations(portType)
	if err != nil {
		return descriptor.InterfaceDescriptor{}, fmt.Errorf("portType %s: %w", name, err)
	}
	ns := descriptor.InterfaceNamespace(portType.Local, TargetNamespace(portType))
	return descriptor.NewInterface(name, ns, ops), nil
}

// BuildInterfaces builds every portType of the collection in document order
func (r *Resolver) BuildInterfaces() ([]descriptor.InterfaceDescriptor, error) {
	portTypes := r.collection.PortTypes()
	out := make([]descriptor.InterfaceDescriptor, 0, len(portTypes))
	for _, pt := range portTypes {
		iface, err := r.BuildInterface(pt)
		if err != nil {
			return nil, err
		}
		out = append(out, iface)
	}
	return out, nil
}
